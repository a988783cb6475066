package catalog

const (
	VersionSSL20 = 0x0002
	VersionSSL30 = 0x0300
	VersionTLS10 = 0x0301
	VersionTLS11 = 0x0302
	VersionTLS12 = 0x0303
)

// ProtocolMethod identifies one protocol version the way the local library
// names its pinned-version constructors.
type ProtocolMethod struct {
	ID      string
	Name    string
	Version uint16
}

// ProtocolMethods is ordered oldest to newest.
var ProtocolMethods = []ProtocolMethod{
	{ID: "SSLv2_method", Name: "SSLv2", Version: VersionSSL20},
	{ID: "SSLv3_method", Name: "SSLv3", Version: VersionSSL30},
	{ID: "TLSv1_method", Name: "TLSv1", Version: VersionTLS10},
	{ID: "TLSv1_1_method", Name: "TLSv1.1", Version: VersionTLS11},
	{ID: "TLSv1_2_method", Name: "TLSv1.2", Version: VersionTLS12},
}

func LookupProtocol(id string) (ProtocolMethod, bool) {
	for _, method := range ProtocolMethods {
		if method.ID == id {
			return method, true
		}
	}
	return ProtocolMethod{}, false
}

// ProtocolName returns the display name for a wire version, or the empty
// string when the version is not in the catalog.
func ProtocolName(version uint16) string {
	for _, method := range ProtocolMethods {
		if method.Version == version {
			return method.Name
		}
	}
	return ""
}
