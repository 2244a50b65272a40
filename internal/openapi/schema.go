package openapi

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-openapi/spec"
	"github.com/shopspring/decimal"
)

var (
	timeType    = reflect.TypeOf(time.Time{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
)

// schemaBuilder отражает DTO-структуры в определения Swagger
type schemaBuilder struct {
	defs  spec.Definitions
	enums map[string][]any
}

func newSchemaBuilder(enums map[string][]any) *schemaBuilder {
	return &schemaBuilder{defs: spec.Definitions{}, enums: enums}
}

// definitionName: Paginated[.../dto.UserResponse] -> PaginatedUserResponse
func definitionName(t reflect.Type) string {
	name := t.Name()
	i := strings.IndexByte(name, '[')
	if i < 0 {
		return name
	}
	base, arg := name[:i], strings.TrimSuffix(name[i+1:], "]")
	if j := strings.LastIndexByte(arg, '.'); j >= 0 {
		arg = arg[j+1:]
	}
	return base + arg
}

func (b *schemaBuilder) schemaFor(t reflect.Type) *spec.Schema {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch {
	case t == timeType:
		return spec.DateTimeProperty()
	case t == decimalType:
		return spec.StrFmtProperty("decimal")
	}

	switch t.Kind() {
	case reflect.String:
		return spec.StringProperty()
	case reflect.Bool:
		return spec.BoolProperty()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return spec.Int32Property()
	case reflect.Int64, reflect.Uint64:
		return spec.Int64Property()
	case reflect.Float32, reflect.Float64:
		return spec.Float64Property()
	case reflect.Slice, reflect.Array:
		// []byte (datatypes.JSON) - произвольный JSON
		if t.Elem().Kind() == reflect.Uint8 {
			return &spec.Schema{}
		}
		return spec.ArrayProperty(b.schemaFor(t.Elem()))
	case reflect.Map:
		return spec.MapProperty(b.schemaFor(t.Elem()))
	case reflect.Struct:
		name := definitionName(t)
		if _, ok := b.defs[name]; !ok {
			b.defs[name] = spec.Schema{} // защита от рекурсии
			b.defs[name] = *b.objectSchema(t)
		}
		return spec.RefSchema("#/definitions/" + name)
	default:
		return &spec.Schema{}
	}
}

func (b *schemaBuilder) objectSchema(t reflect.Type) *spec.Schema {
	s := &spec.Schema{}
	s.Typed("object", "")
	b.eachField(t, func(f reflect.StructField, name string) {
		prop := b.fieldSchema(f)
		s.SetProperty(name, *prop)
		if isRequired(f) {
			s.AddRequired(name)
		}
	})
	return s
}

// eachField обходит экспортируемые поля, раскрывая встроенные структуры
func (b *schemaBuilder) eachField(t reflect.Type, fn func(f reflect.StructField, name string)) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			b.eachField(f.Type, fn)
			continue
		}
		name := fieldName(f)
		if name == "" {
			continue
		}
		fn(f, name)
	}
}

func fieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "" {
		name = strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
	}
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func (b *schemaBuilder) fieldSchema(f reflect.StructField) *spec.Schema {
	var s *spec.Schema
	if f.Tag.Get("swaggertype") == "object" {
		s = &spec.Schema{}
		s.Typed("object", "")
	} else {
		s = b.schemaFor(f.Type)
	}
	if s.Ref.String() != "" {
		return s
	}
	b.applyRules(f, func(rule, arg string) {
		switch rule {
		case "email":
			s.Typed("string", "email")
		case "url":
			s.Typed("string", "uri")
		case "oneof":
			s.WithEnum(stringsToAny(strings.Fields(arg))...)
		case "min", "gte":
			if n, err := strconv.ParseFloat(arg, 64); err == nil {
				if s.Type.Contains("string") {
					s.WithMinLength(int64(n))
				} else {
					s.WithMinimum(n, false)
				}
			}
		case "max", "lte":
			if n, err := strconv.ParseFloat(arg, 64); err == nil {
				if s.Type.Contains("string") {
					s.WithMaxLength(int64(n))
				} else {
					s.WithMaximum(n, false)
				}
			}
		case "gt":
			if n, err := strconv.ParseFloat(arg, 64); err == nil {
				s.WithMinimum(n, true)
			}
		default:
			if values, ok := b.enums[rule]; ok {
				s.WithEnum(values...)
			}
		}
	})
	return s
}

func (b *schemaBuilder) applyRules(f reflect.StructField, fn func(rule, arg string)) {
	tag := f.Tag.Get("validate")
	if tag == "" {
		return
	}
	for _, part := range strings.Split(tag, ",") {
		rule, arg, _ := strings.Cut(part, "=")
		fn(rule, arg)
	}
}

func isRequired(f reflect.StructField) bool {
	for _, part := range strings.Split(f.Tag.Get("validate"), ",") {
		if part == "required" {
			return true
		}
	}
	return false
}

// queryParams превращает поля структуры запроса в query-параметры
func (b *schemaBuilder) queryParams(proto any) []*spec.Parameter {
	var params []*spec.Parameter
	b.eachField(reflect.TypeOf(proto), func(f reflect.StructField, _ string) {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return
		}
		p := spec.QueryParam(name)
		b.simpleParam(p, f)
		params = append(params, p)
	})
	return params
}

// formParams - текстовые поля multipart-формы
func (b *schemaBuilder) formParams(proto any) []*spec.Parameter {
	var params []*spec.Parameter
	b.eachField(reflect.TypeOf(proto), func(f reflect.StructField, _ string) {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return
		}
		p := spec.FormDataParam(name)
		b.simpleParam(p, f)
		params = append(params, p)
	})
	return params
}

func (b *schemaBuilder) simpleParam(p *spec.Parameter, f reflect.StructField) {
	s := b.fieldSchema(f)
	tpe, format := "string", s.Format
	if len(s.Type) > 0 {
		tpe = s.Type[0]
	}
	p.Typed(tpe, format)
	if len(s.Enum) > 0 {
		p.WithEnum(s.Enum...)
	}
	if s.Minimum != nil {
		p.WithMinimum(*s.Minimum, s.ExclusiveMinimum)
	}
	if s.Maximum != nil {
		p.WithMaximum(*s.Maximum, s.ExclusiveMaximum)
	}
	if _, def, ok := strings.Cut(f.Tag.Get("form"), ",default="); ok {
		if n, err := strconv.Atoi(def); err == nil {
			p.WithDefault(n)
		} else {
			p.WithDefault(def)
		}
	}
	if isRequired(f) {
		p.AsRequired()
	}
}

func stringsToAny(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}
