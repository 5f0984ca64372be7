package meta

// Append combines two tables stacked along their shared axis. Fields present
// in both are concatenated, recursing into nested tables. Fields present only
// in incoming are adopted under their own name; fields present only in base
// keep their original value. Neither input is modified.
//
// An unset side of a shared field contributes no elements, so the combined
// column carries only the set side's values. If that leaves the column
// shorter than the combined axis, descriptor building on the merged
// container reports the mismatch; Append never pads.
func Append(base, incoming *Table) (*Table, error) {
	out := base.Clone()

	for _, name := range incoming.names {
		in := incoming.cols[name]
		have, ok := out.cols[name]
		if !ok {
			out.Set(name, in.Clone())
			continue
		}

		ht, hok := have.Table()
		it, iok := in.Table()
		if hok && iok {
			merged, err := Append(ht, it)
			if err != nil {
				return nil, err
			}
			out.cols[name] = Nested(merged)
			continue
		}

		merged, err := have.concat(in)
		if err != nil {
			if tm, ok := err.(*TypeMismatchError); ok {
				tm.Field = name
			}
			return nil, err
		}
		out.cols[name] = merged
	}
	return out, nil
}
