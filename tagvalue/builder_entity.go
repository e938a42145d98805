package tagvalue

import "github.com/c360studio/semsbom/spdx"

// BuildTool parses a "Tool: <name>" entity value.
func (b *Builder) BuildTool(value string) (spdx.Tool, error) {
	t, err := spdx.ParseTool(value)
	if err != nil {
		return spdx.Tool{}, &ValueError{Field: "Tool"}
	}
	return t, nil
}

// BuildOrganization parses an "Organization: <name> (<email>)" entity
// value. The email part is optional.
func (b *Builder) BuildOrganization(value string) (spdx.Organization, error) {
	o, err := spdx.ParseOrganization(value)
	if err != nil {
		return spdx.Organization{}, &ValueError{Field: "Organization"}
	}
	return o, nil
}

// BuildPerson parses a "Person: <name> (<email>)" entity value.
func (b *Builder) BuildPerson(value string) (spdx.Person, error) {
	p, err := spdx.ParsePerson(value)
	if err != nil {
		return spdx.Person{}, &ValueError{Field: "Person"}
	}
	return p, nil
}

// AddCreator appends a creator entity. Creators repeat freely.
func (b *Builder) AddCreator(doc *spdx.Document, c spdx.Creator) error {
	if c == nil {
		return &ValueError{Field: "CreationInfo::Creator"}
	}
	doc.CreationInfo.AddCreator(c)
	return nil
}

// SetCreatedDate sets the creation timestamp.
func (b *Builder) SetCreatedDate(doc *spdx.Document, value string) error {
	if b.createdDateSet {
		return &CardinalityError{Field: "CreationInfo::Created"}
	}
	b.createdDateSet = true
	t, err := spdx.ParseTime(value)
	if err != nil {
		return &ValueError{Field: "CreationInfo::Created"}
	}
	doc.CreationInfo.Created = t
	return nil
}

// SetCreationComment sets the creation comment from a free form text
// block.
func (b *Builder) SetCreationComment(doc *spdx.Document, value string) error {
	if b.creationCommentSet {
		return &CardinalityError{Field: "CreationInfo::Comment"}
	}
	b.creationCommentSet = true
	if !isFreeFormText(value) {
		return &ValueError{Field: "CreationInfo::Comment"}
	}
	doc.CreationInfo.Comment = textBody(value)
	return nil
}

// SetLicenseListVersion records which license list revision the
// creators worked against, as a bare "M.N" pair.
func (b *Builder) SetLicenseListVersion(doc *spdx.Document, value string) error {
	if b.licenseListVersionSet {
		return &CardinalityError{Field: "CreationInfo::LicenseListVersion"}
	}
	b.licenseListVersionSet = true
	v, err := spdx.ParseVersionPair(value)
	if err != nil {
		return &ValueError{Field: "CreationInfo::LicenseListVersion"}
	}
	doc.CreationInfo.LicenseListVersion = v
	return nil
}
