package component

// FindFuturesAndStreams collects every future and stream type
// reachable through vt, depth first, with payloads listed before the
// types that carry them. The ordering matches the index assignment
// pass of the declaration loader, which numbers inner transfers
// before outer ones.
func (t *TypeTable) FindFuturesAndStreams(vt ValType) []TypeID {
	var found []TypeID
	t.findFuturesAndStreams(vt, &found)
	return found
}

func (t *TypeTable) findFuturesAndStreams(vt ValType, found *[]TypeID) {
	if vt.IsPrimitive() {
		return
	}

	at, err := t.Resolve(vt.Ref)
	if err != nil {
		return
	}

	switch at.Kind {
	case KindFuture, KindStream:
		if at.Payload != nil {
			t.findFuturesAndStreams(*at.Payload, found)
		}
		*found = append(*found, vt.Ref)

	case KindDefined:
		d := at.Defined
		switch d.Kind {
		case DefinedRecord:
			for _, f := range d.Data.(RecordData).Fields {
				t.findFuturesAndStreams(f.Type, found)
			}
		case DefinedList:
			t.findFuturesAndStreams(d.Data.(ValType), found)
		case DefinedTuple:
			for _, elem := range d.Data.(TupleData).Types {
				t.findFuturesAndStreams(elem, found)
			}
		case DefinedOption:
			t.findFuturesAndStreams(d.Data.(ValType), found)
		case DefinedResult:
			data := d.Data.(ResultData)
			if data.OK != nil {
				t.findFuturesAndStreams(*data.OK, found)
			}
			if data.Err != nil {
				t.findFuturesAndStreams(*data.Err, found)
			}
		case DefinedVariant:
			for _, c := range d.Data.(VariantData).Cases {
				if c.Type != nil {
					t.findFuturesAndStreams(*c.Type, found)
				}
			}
		}
	}
}
