// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/verchain/blob/master/LICENSE.md.

package chainview

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

type jsonPrinter struct {
	out   io.Writer
	codec jsoniter.API
}

// NewJSONPrinter renders snapshots as an indented JSON document.
func NewJSONPrinter(out io.Writer) Printer {
	return jsonPrinter{
		out:   out,
		codec: jsoniter.ConfigCompatibleWithStandardLibrary,
	}
}

func (p jsonPrinter) Print(rows []Row) error {
	doc, err := p.codec.MarshalIndent(rows, "", "    ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal chain snapshot")
	}
	doc = append(doc, '\n')
	_, err = p.out.Write(doc)
	return err
}
