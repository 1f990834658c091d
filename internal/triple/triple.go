package triple

import "strings"

// Triple is a parsed "arch-vendor-os-environment" target string.
type Triple struct {
	Arch        ArchType
	ArchName    string // arch component as written, e.g. "sparc64"
	Vendor      string
	OS          string
	Environment string
}

// Parse splits s into at most four components. Missing components are left
// empty; extra dashes stay in the environment component.
func Parse(s string) Triple {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 4)
	var t Triple
	t.ArchName = parts[0]
	t.Arch = ParseArch(parts[0])
	if len(parts) > 1 {
		t.Vendor = parts[1]
	}
	if len(parts) > 2 {
		t.OS = parts[2]
	}
	if len(parts) > 3 {
		t.Environment = parts[3]
	}
	return t
}

func (t Triple) String() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{t.ArchName, t.Vendor, t.OS, t.Environment} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "-")
}
