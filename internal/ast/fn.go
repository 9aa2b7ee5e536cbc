package ast

import (
	"fmt"

	"fortio.org/safecast"

	"mica/internal/source"
)

// FnItem is a function declaration. Parameters are stored as a contiguous
// run in the Params arena, addressed by start ID and count.
type FnItem struct {
	Name        source.StringID
	NameSpan    source.Span
	Result      TypeSpec
	ParamsStart ParamID
	ParamsCount uint32
	Body        StmtID
	Span        source.Span
}

// Param is one function parameter.
type Param struct {
	Name     source.StringID
	NameSpan source.Span
	Type     TypeSpec
	Span     source.Span
}

func (i *Items) Fn(id ItemID) (*FnItem, bool) {
	item := i.Arena.Get(uint32(id))
	if item == nil || item.Kind != ItemFn {
		return nil, false
	}
	return i.Fns.Get(uint32(item.Payload)), true
}

func (i *Items) NewFn(
	name source.StringID,
	nameSpan source.Span,
	result TypeSpec,
	params []Param,
	body StmtID,
	span source.Span,
) ItemID {
	paramsStart, paramsCount := i.allocateParams(params)
	payload := i.Fns.Allocate(FnItem{
		Name:        name,
		NameSpan:    nameSpan,
		Result:      result,
		ParamsStart: paramsStart,
		ParamsCount: paramsCount,
		Body:        body,
		Span:        span,
	})
	return i.New(ItemFn, span, PayloadID(payload))
}

func (i *Items) allocateParams(params []Param) (start ParamID, count uint32) {
	if len(params) == 0 {
		return NoParamID, 0
	}
	for idx, p := range params {
		id := ParamID(i.Params.Allocate(p))
		if idx == 0 {
			start = id
		}
	}
	n, err := safecast.Conv[uint32](len(params))
	if err != nil {
		panic(fmt.Errorf("params count overflow: %w", err))
	}
	return start, n
}

// CollectParams returns a copy of the parameter run for a function.
func (i *Items) CollectParams(fn *FnItem) []Param {
	if fn == nil || fn.ParamsCount == 0 || !fn.ParamsStart.IsValid() {
		return nil
	}
	result := make([]Param, 0, fn.ParamsCount)
	base := uint32(fn.ParamsStart)
	for offset := range fn.ParamsCount {
		p := i.Params.Get(base + offset)
		if p == nil {
			continue
		}
		result = append(result, *p)
	}
	return result
}
