// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	jsoniter "github.com/json-iterator/go"
	"reflect"
	"unsafe"
)

// Make sure functions get run first
var json = func() jsoniter.API {
	neverEmpty := func(pointer unsafe.Pointer) bool { return false }

	jsoniter.RegisterTypeEncoderFunc(reflect.TypeOf(Message{}).String(), encodeMessage, neverEmpty)
	jsoniter.RegisterTypeDecoderFunc(reflect.TypeOf(Message{}).String(), decodeMessage)

	return jsoniter.Config{
		IndentionStep:                 0,
		MarshalFloatWith6Digits:       true,
		EscapeHTML:                    false,
		SortMapKeys:                   true,
		UseNumber:                     false,
		DisallowUnknownFields:         false,
		TagKey:                        "json",
		OnlyTaggedField:               false,
		ValidateJsonRawMessage:        false,
		ObjectFieldMustBeSimpleString: true,
		CaseSensitive:                 true,
	}.Froze()
}()

func encodeMessage(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	message := (*Message)(ptr)
	stream.WriteVal(message.messageJSON())
}

// inboundJSON is the envelope of every inbound. Data is decoded once the type is known.
type inboundJSON struct {
	Data jsoniter.RawMessage `json:"data"`
	Type messageType         `json:"type"`
}

func decodeMessage(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	var envelope inboundJSON
	iter.ReadVal(&envelope)
	if iter.Error != nil {
		return
	}
	if envelope.Type == "" {
		iter.ReportError("decode message", "no inbound message type")
		return
	}

	message := (*Message)(ptr)

	inboundType, ok := inboundMessageTypes[envelope.Type]
	if !ok {
		message.Data = InvalidInbound{messageType: envelope.Type}
		return
	}

	// Pointer to a new inbound
	in := reflect.New(inboundType)
	if len(envelope.Data) > 0 {
		// Borrow from the same pool so the frozen config applies
		pool := iter.Pool()
		dataIter := pool.BorrowIterator(envelope.Data)
		defer pool.ReturnIterator(dataIter)

		dataIter.ReadVal(in.Interface())
		if err := dataIter.Error; err != nil {
			iter.ReportError("decode "+string(envelope.Type), err.Error())
			return
		}
	}
	message.Data = in.Elem().Interface()
}
