package bridgegen

import (
	"io"

	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"

	"github.com/wippyai/bridgegen/errors"
	"github.com/wippyai/bridgegen/shim"
)

// LoadWIT decodes the JSON form of a WIT resolve, as printed by
// `wasm-tools component wit --json`.
func LoadWIT(r io.Reader) (*wit.Resolve, error) {
	res, err := wit.DecodeJSON(r)
	if err != nil {
		return nil, errors.ParseFailed("WIT JSON", err)
	}
	return res, nil
}

// Collect returns the distinct supported element types of every list<T> in
// res, in emission order. Lists of other types are skipped.
func Collect(res *wit.Resolve) []shim.Element {
	if res == nil {
		return nil
	}

	g := shim.NewGenerator(shim.Config{})
	for _, td := range res.TypeDefs {
		list, ok := td.Kind.(*wit.List)
		if !ok {
			continue
		}
		if err := g.AddType(list.Type); err != nil {
			Logger().Debug("skip list element",
				zap.String("element", shim.TypeName(list.Type)),
				zap.Error(err),
			)
		}
	}
	return g.Elements()
}
