package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// fileSchema is the activation config file layout:
//
//	default = true
//
//	module "viewersync" {
//	  enabled = false
//	}
type fileSchema struct {
	Default *bool         `hcl:"default,optional"`
	Modules []moduleBlock `hcl:"module,block"`
}

type moduleBlock struct {
	Name    string `hcl:"name,label"`
	Enabled bool   `hcl:"enabled"`
}

// LoadFile reads an activation config from path. Any malformed value (a
// non-boolean enabled, an unknown attribute, a duplicated module block) is
// a fatal configuration error, surfaced here before any module activates.
func LoadFile(path string) (Activation, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Activation{}, fmt.Errorf("reading activation config: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes activation config source. filename is used in diagnostics.
func Parse(src []byte, filename string) (Activation, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Activation{}, fmt.Errorf("parsing activation config %s: %w", filename, diags)
	}

	if err := verifyBoolValues(file.Body, filename); err != nil {
		return Activation{}, err
	}
	var schema fileSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &schema); diags.HasErrors() {
		return Activation{}, fmt.Errorf("decoding activation config %s: %w", filename, diags)
	}

	act := Activation{Default: true, Modules: make(map[string]bool, len(schema.Modules))}
	if schema.Default != nil {
		act.Default = *schema.Default
	}
	for _, block := range schema.Modules {
		if _, dup := act.Modules[block.Name]; dup {
			return Activation{}, fmt.Errorf(
				"decoding activation config %s: module %q configured twice", filename, block.Name)
		}
		act.Modules[block.Name] = block.Enabled
	}
	return act, nil
}

// verifyBoolValues re-checks every activation value against cty.Bool so the
// error names the offending attribute instead of the decoder's generic
// conversion failure.
func verifyBoolValues(body hcl.Body, filename string) error {
	content, diags := body.Content(&hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{{Name: "default"}},
		Blocks:     []hcl.BlockHeaderSchema{{Type: "module", LabelNames: []string{"name"}}},
	})
	if diags.HasErrors() {
		return fmt.Errorf("decoding activation config %s: %w", filename, diags)
	}

	checkAttr := func(owner string, attr *hcl.Attribute) error {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("decoding activation config %s: %w", filename, diags)
		}
		if val.Type() != cty.Bool {
			return fmt.Errorf(
				"activation config %s: %s must be a bool, got %s",
				filename, owner, val.Type().FriendlyName())
		}
		return nil
	}

	if attr, ok := content.Attributes["default"]; ok {
		if err := checkAttr("default", attr); err != nil {
			return err
		}
	}
	for _, block := range content.Blocks {
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return fmt.Errorf("decoding activation config %s: %w", filename, diags)
		}
		if attr, ok := attrs["enabled"]; ok {
			if err := checkAttr(fmt.Sprintf("module %q enabled", block.Labels[0]), attr); err != nil {
				return err
			}
		}
	}
	return nil
}
