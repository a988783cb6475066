package catalog

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

//go:embed assets/ciphers.csv
var cipherTable []byte

type CipherSuite struct {
	ID       uint16
	Name     string
	IANAName string
	Weak     bool
}

// FiniteFieldDHE reports whether the server sends an ephemeral finite-field
// Diffie-Hellman group in its ServerKeyExchange for this suite.
func (c CipherSuite) FiniteFieldDHE() bool {
	return strings.HasPrefix(c.IANAName, "TLS_DHE_") || strings.HasPrefix(c.IANAName, "TLS_DH_anon_")
}

var cipherSuites = mustBuildCipherSuites()

// BuildCipherSuites parses the embedded cipher table. Rows keep the file
// order, which is the canonical order every report uses.
func BuildCipherSuites() ([]CipherSuite, error) {
	return parseCipherTable(cipherTable)
}

func parseCipherTable(data []byte) ([]CipherSuite, error) {
	cs := []CipherSuite{}

	r := csv.NewReader(bytes.NewReader(data))
	table, err := r.ReadAll()
	if err != nil {
		return cs, err
	}

	// loop over all rows after header
	for i := 1; i < len(table); i++ {
		row := table[i]
		if len(row) != 4 {
			return cs, fmt.Errorf("cipher table row %d: expected 4 columns, got %d", i, len(row))
		}

		cid, err := strconv.ParseUint(strings.Replace(row[0], ",0x", "", 1), 0, 16)
		if err != nil {
			return cs, fmt.Errorf("cipher table row %d: %w", i, err)
		}

		cs = append(cs, CipherSuite{
			ID:       uint16(cid),
			Name:     row[1],
			IANAName: row[2],
			Weak:     row[3] == "Y",
		})
	}

	return cs, nil
}

func mustBuildCipherSuites() []CipherSuite {
	cs, err := BuildCipherSuites()
	if err != nil {
		panic("catalog: malformed cipher table: " + err.Error())
	}
	return cs
}

// CipherSuites returns a copy of the canonical catalog.
func CipherSuites() []CipherSuite {
	out := make([]CipherSuite, len(cipherSuites))
	copy(out, cipherSuites)
	return out
}

func WeakCipherSuites() []CipherSuite {
	weak := []CipherSuite{}
	for _, suite := range cipherSuites {
		if suite.Weak {
			weak = append(weak, suite)
		}
	}
	return weak
}

func CipherNames() []string {
	names := make([]string, len(cipherSuites))
	for i, suite := range cipherSuites {
		names[i] = suite.Name
	}
	return names
}

func LookupCipher(name string) (CipherSuite, bool) {
	for _, suite := range cipherSuites {
		if suite.Name == name {
			return suite, true
		}
	}
	return CipherSuite{}, false
}

func LookupCipherID(id uint16) (CipherSuite, bool) {
	for _, suite := range cipherSuites {
		if suite.ID == id {
			return suite, true
		}
	}
	return CipherSuite{}, false
}

func IsWeak(name string) bool {
	suite, ok := LookupCipher(name)
	return ok && suite.Weak
}
