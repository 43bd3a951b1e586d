package pinentry

import "github.com/wagiedev/pinentry-go/internal/config"

// Transport defines the line channel to a pinentry process.
// Implement this to provide custom transports for testing or mocking.
//
// The default implementation spawns pinentry as a subprocess.
// Custom transports can be injected via WithTransport.
type Transport = config.Transport
