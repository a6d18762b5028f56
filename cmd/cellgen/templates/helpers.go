package templates

import (
	"fmt"
	"strings"

	"github.com/delaneyj/cellparty/cmd/cellgen/manifest"
	"github.com/delaneyj/cellparty/lazy"
)

func upperCamel(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func cellVar(c manifest.Cell) string {
	return c.Name + "Cell"
}

func cellDoc(c manifest.Cell) string {
	doc := strings.TrimSpace(c.Doc)
	if doc == "" {
		doc = fmt.Sprintf("%s holds the deferred %s value.", cellVar(c), c.Name)
	}
	return "// " + doc
}

func declareCall(registry string, c manifest.Cell) string {
	if c.Fallible {
		return fmt.Sprintf("lazy.DeclareErr(%s, %q, %s)", registry, c.Name, c.Init)
	}
	return fmt.Sprintf("lazy.Declare(%s, %q, %s)", registry, c.Name, c.Init)
}

func accessorName(c manifest.Cell) string {
	if c.Exported {
		return upperCamel(c.Name)
	}
	return c.Name
}

func accessorReturns(c manifest.Cell) string {
	if c.Fallible {
		return fmt.Sprintf("(%s, error)", c.Type)
	}
	return c.Type
}

func forceFnName(c manifest.Cell) string {
	if c.Exported {
		return "Force" + upperCamel(c.Name)
	}
	return "force" + upperCamel(c.Name)
}

func forceReturns(c manifest.Cell) string {
	if c.Fallible {
		return " error"
	}
	return ""
}

func forceBody(c manifest.Cell) string {
	if c.Fallible {
		return fmt.Sprintf("return %s.Force()", cellVar(c))
	}
	return fmt.Sprintf("%s.Force()", cellVar(c))
}

func idConstName(c manifest.Cell) string {
	if c.Exported {
		return upperCamel(c.Name) + "CellID"
	}
	return c.Name + "CellID"
}

func cellIDHex(c manifest.Cell) string {
	return fmt.Sprintf("%#x", lazy.CellID(c.Name))
}
