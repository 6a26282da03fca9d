// Package schema declares the HCL shapes of the yeth.hcl manifest. These
// structs are decoded directly by gohcl and then translated into the
// format-agnostic model in internal/config.
package schema

import "github.com/hashicorp/hcl/v2"

// AppBlock represents the single `app` block of a manifest. The list
// attributes stay as expressions here; evaluation and type conversion
// happen in the loader.
type AppBlock struct {
	Name         string         `hcl:"name,optional"`
	Dependencies hcl.Expression `hcl:"dependencies,optional"`
	Exclude      hcl.Expression `hcl:"exclude,optional"`
}

// Manifest represents the top-level structure of a yeth.hcl file.
type Manifest struct {
	App  *AppBlock `hcl:"app,block"`
	Body hcl.Body  `hcl:",remain"`
}
