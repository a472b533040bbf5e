// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// VersionTriple holds the three version fields captured from a build
// configuration file. Fields are the raw matched text and are never parsed
// as integers; any of them may be empty when the Makefile omits the value.
type VersionTriple struct {
	// Major is the SOMAJOR value.
	Major string `json:"major" yaml:"major"`

	// Minor is the SOMINOR value.
	Minor string `json:"minor" yaml:"minor"`

	// Revision is the SOREV value.
	Revision string `json:"revision" yaml:"revision"`
}

// Fields returns the triple in Makefile order: major, minor, revision.
func (v VersionTriple) Fields() []string {
	return []string{v.Major, v.Minor, v.Revision}
}
