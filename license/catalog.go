package license

import (
	"bytes"
	"encoding/json"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
)

// Embedded snapshot of the SPDX license list, in the layout published by
// github.com/spdx/license-list-data.
//
//go:embed licenses.json
var licensesJSON []byte

//go:embed exceptions.json
var exceptionsJSON []byte

// Catalog is the recognized-license table: short identifier to display name
// and back, plus the license exception list. It is immutable once loaded and
// safe for concurrent readers.
type Catalog struct {
	version string

	nameByID map[string]string
	idByName map[string]string

	excNameByID map[string]string
	excIDByName map[string]string
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the catalog built from the embedded license list
// snapshot. It is loaded once for the process lifetime.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		cat, err := Load(bytes.NewReader(licensesJSON), bytes.NewReader(exceptionsJSON))
		if err != nil {
			// The embedded snapshot is validated by tests; failing to parse
			// it means a broken build, not a runtime condition.
			panic("license: embedded license list is invalid: " + err.Error())
		}
		defaultCatalog = cat
	})
	return defaultCatalog
}

// Load builds a catalog from license-list-data JSON. Deprecated identifiers
// are skipped. exceptions may be nil when no exception list is wanted.
func Load(licenses, exceptions io.Reader) (*Catalog, error) {
	var list struct {
		LicenseListVersion string `json:"licenseListVersion"`
		Licenses           []struct {
			Name         string `json:"name"`
			LicenseID    string `json:"licenseId"`
			IsDeprecated bool   `json:"isDeprecatedLicenseId"`
		} `json:"licenses"`
	}
	if err := json.NewDecoder(licenses).Decode(&list); err != nil {
		return nil, fmt.Errorf("parse license list: %w", err)
	}

	cat := &Catalog{
		version:     list.LicenseListVersion,
		nameByID:    make(map[string]string, len(list.Licenses)),
		idByName:    make(map[string]string, len(list.Licenses)),
		excNameByID: map[string]string{},
		excIDByName: map[string]string{},
	}
	for _, lic := range list.Licenses {
		if lic.IsDeprecated {
			continue
		}
		cat.nameByID[lic.LicenseID] = lic.Name
		cat.idByName[lic.Name] = lic.LicenseID
	}

	if exceptions != nil {
		var excList struct {
			Exceptions []struct {
				Name               string `json:"name"`
				LicenseExceptionID string `json:"licenseExceptionId"`
				IsDeprecated       bool   `json:"isDeprecatedLicenseId"`
			} `json:"exceptions"`
		}
		if err := json.NewDecoder(exceptions).Decode(&excList); err != nil {
			return nil, fmt.Errorf("parse exception list: %w", err)
		}
		for _, exc := range excList.Exceptions {
			if exc.IsDeprecated {
				continue
			}
			cat.excNameByID[exc.LicenseExceptionID] = exc.Name
			cat.excIDByName[exc.Name] = exc.LicenseExceptionID
		}
	}

	return cat, nil
}

// LoadFile builds a catalog from a license list file on disk, keeping the
// embedded exception list.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open license list: %w", err)
	}
	defer f.Close()
	return Load(f, bytes.NewReader(exceptionsJSON))
}

// Version returns the license list version, e.g. "3.26".
func (c *Catalog) Version() string { return c.version }

// Name returns the display name for a license identifier.
func (c *Catalog) Name(id string) (string, bool) {
	name, ok := c.nameByID[id]
	return name, ok
}

// ID returns the license identifier for a display name.
func (c *Catalog) ID(name string) (string, bool) {
	id, ok := c.idByName[name]
	return id, ok
}

// Has reports whether the identifier is in the catalog. A trailing "+"
// (or-later marker) on the identifier is ignored for the lookup.
func (c *Catalog) Has(id string) bool {
	_, ok := c.nameByID[strings.TrimRight(id, "+")]
	return ok
}

// Known reports whether s appears in the catalog at all, as either a
// license identifier or a display name.
func (c *Catalog) Known(s string) bool {
	if _, ok := c.nameByID[s]; ok {
		return true
	}
	_, ok := c.idByName[s]
	return ok
}

// IDs returns all license identifiers in ascending order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.nameByID))
	for id := range c.nameByID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ExceptionName returns the display name for an exception identifier.
func (c *Catalog) ExceptionName(id string) (string, bool) {
	name, ok := c.excNameByID[id]
	return name, ok
}

// ExceptionIDs returns all exception identifiers in ascending order.
func (c *Catalog) ExceptionIDs() []string {
	ids := make([]string, 0, len(c.excNameByID))
	for id := range c.excNameByID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FromIdentifier returns the catalog license for the identifier, or a
// license whose name equals the identifier when the catalog has no entry.
func (c *Catalog) FromIdentifier(id string) License {
	if name, ok := c.nameByID[id]; ok {
		return License{Identifier: id, Name: name}
	}
	return License{Identifier: id, Name: id}
}

// FromFullName returns the catalog license for the display name, or a
// license whose identifier equals the name when the catalog has no entry.
func (c *Catalog) FromFullName(name string) License {
	if id, ok := c.idByName[name]; ok {
		return License{Identifier: id, Name: name}
	}
	return License{Identifier: name, Name: name}
}
