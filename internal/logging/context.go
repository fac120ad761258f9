package logging

import "context"

type fieldsKey struct{}

// ContextWith returns a copy of ctx carrying the key-value pairs in args in
// addition to any already attached. Both Logger implementations emit these
// fields on every record logged with the returned context.
func ContextWith(ctx context.Context, args ...any) context.Context {
	prev := FieldsFromContext(ctx)
	fields := make([]any, 0, len(prev)+len(args))
	fields = append(fields, prev...)
	fields = append(fields, args...)
	return context.WithValue(ctx, fieldsKey{}, fields)
}

// FieldsFromContext returns the pairs attached with ContextWith, or nil.
func FieldsFromContext(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(fieldsKey{}).([]any)
	return fields
}

func withContextFields(ctx context.Context, args []any) []any {
	fields := FieldsFromContext(ctx)
	if len(fields) == 0 {
		return args
	}
	return append(append(make([]any, 0, len(fields)+len(args)), fields...), args...)
}
