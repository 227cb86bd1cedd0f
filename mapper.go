package datephrase

import (
	"reflect"

	"github.com/alecthomas/kong"
)

// Mapper decodes a kong flag or argument into a time.Time using the
// default parser.
var Mapper kong.MapperFunc = defaultParser.Mapper()

// Mapper returns a kong mapper that decodes values with p.
func (p *Parser) Mapper() kong.MapperFunc {
	return func(ctx *kong.DecodeContext, target reflect.Value) error {
		var phrase string
		if err := ctx.Scan.PopValueInto("time", &phrase); err != nil {
			return err
		}

		t, err := p.Parse(phrase)
		if err != nil {
			return err
		}

		target.Set(reflect.ValueOf(t))
		return nil
	}
}
