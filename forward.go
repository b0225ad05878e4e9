package suitekit

import (
	"fmt"
	"reflect"
)

// Method is an invocable bound to a named method of a lazily resolved receiver.
type Method func(args ...any) ([]any, error)

// resolve finds name on v as an exported method, or as an exported func-valued
// field of the struct v points to.
func resolve(v reflect.Value, name string) (reflect.Value, bool) {
	if !v.IsValid() {
		return reflect.Value{}, false
	}

	if m := v.MethodByName(name); m.IsValid() {
		return m, true
	}

	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, false
		}

		v = v.Elem()
		if m := v.MethodByName(name); m.IsValid() {
			return m, true
		}
	}

	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}

	f, ok := v.Type().FieldByName(name)
	if !ok || !f.IsExported() || f.Type.Kind() != reflect.Func {
		return reflect.Value{}, false
	}

	fn, err := v.FieldByIndexErr(f.Index)
	if err != nil || fn.IsNil() {
		return reflect.Value{}, false
	}

	return fn, true
}

// invoke calls name on receiver with args and collects the results.
func invoke(receiver any, name string, args []any) ([]any, error) {
	fn, ok := resolve(reflect.ValueOf(receiver), name)
	if !ok {
		return nil, &ForwardError{Method: name, Err: ErrNoSuchMethod}
	}

	in, err := arguments(fn.Type(), args)
	if err != nil {
		return nil, &ForwardError{Method: name, Err: err}
	}

	out := fn.Call(in)

	results := make([]any, len(out))
	for i, r := range out {
		results[i] = r.Interface()
	}

	return results, nil
}

// arguments converts args to reflect values accepted by a function of type ft.
// Variadic tails are passed individually, as reflect.Value.Call expects.
func arguments(ft reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Errorf("%w: want at least %d, got %d", ErrBadArguments, fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrBadArguments, fixed, len(args))
	}

	in := make([]reflect.Value, len(args))

	for i, a := range args {
		var want reflect.Type
		if i < fixed {
			want = ft.In(i)
		} else {
			want = ft.In(fixed).Elem()
		}

		v, err := argument(want, a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}

		in[i] = v
	}

	return in, nil
}

func argument(want reflect.Type, a any) (reflect.Value, error) {
	if a == nil {
		switch want.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(want), nil
		default:
			return reflect.Value{}, fmt.Errorf("%w: nil is not a %s", ErrBadArguments, want)
		}
	}

	v := reflect.ValueOf(a)
	if !v.Type().AssignableTo(want) {
		return reflect.Value{}, fmt.Errorf("%w: %s is not assignable to %s", ErrBadArguments, v.Type(), want)
	}

	return v, nil
}
