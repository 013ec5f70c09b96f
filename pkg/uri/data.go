package uri

// DefaultHost is assigned to URLs whose scheme starts with "http" but which
// carry no host.
const DefaultHost = "localhost"

const (
	minPort = 1
	maxPort = 0xffff
)

var defaultPorts = map[string]int{
	"http":   80,
	"https":  443,
	"ftp":    21,
	"gopher": 70,
	"nntp":   119,
	"news":   119,
	"telnet": 23,
	"tn3270": 23,
	"imap":   143,
	"pop":    110,
	"ldap":   389,
}

// DefaultPort returns the well-known port of scheme, or false when the
// scheme has none registered. The scheme is matched case-sensitively
// against lowercase names.
func DefaultPort(scheme string) (int, bool) {
	port, ok := defaultPorts[scheme]
	return port, ok
}

// Parts holds the raw components of a URI reference before any filtering,
// in the shape produced by Split and consumed by FromParts. A zero Port
// means the reference carries no port.
type Parts struct {
	Scheme   string
	User     string
	Pass     string
	Host     string
	Port     int
	Path     string
	Query    string
	Fragment string
}
