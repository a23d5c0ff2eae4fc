// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package level

import (
	"github.com/SoftbearStudios/tilegen/terrain"
	jsoniter "github.com/json-iterator/go"
	"reflect"
	"unsafe"
)

// Make sure functions get run first
var json = func() jsoniter.API {
	neverEmpty := func(pointer unsafe.Pointer) bool { return false }

	// Colors are "#rrggbb" so config files can be edited by hand
	jsoniter.RegisterTypeEncoderFunc(reflect.TypeOf(terrain.ColorVec{}).String(), encodeColor, neverEmpty)
	jsoniter.RegisterTypeDecoderFunc(reflect.TypeOf(terrain.ColorVec{}).String(), decodeColor)

	return jsoniter.Config{
		IndentionStep:                 2,
		MarshalFloatWith6Digits:       true,
		EscapeHTML:                    false,
		SortMapKeys:                   true,
		UseNumber:                     false,
		DisallowUnknownFields:         true,
		TagKey:                        "json",
		OnlyTaggedField:               false,
		ValidateJsonRawMessage:        false,
		ObjectFieldMustBeSimpleString: true,
		CaseSensitive:                 true,
	}.Froze()
}()

func encodeColor(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	c := *(*terrain.ColorVec)(ptr)
	stream.WriteString(c.Hex())
}

func decodeColor(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	c, err := terrain.ParseHex(iter.ReadString())
	if err != nil {
		iter.ReportError("decode color", err.Error())
		return
	}
	*(*terrain.ColorVec)(ptr) = c
}
