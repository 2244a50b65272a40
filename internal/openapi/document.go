package openapi

import (
	"encoding/json"
	"net/http"
	"reflect"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"contest_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/spec"
	"github.com/swaggo/swag"
)

const bearerAuth = "BearerAuth"

// Document строит Swagger 2.0 документ по смонтированным маршрутам
func (r *Registry) Document() *spec.Swagger {
	b := newSchemaBuilder(r.enums)
	errorRef := b.schemaFor(reflect.TypeOf(apperrors.ErrorResponse{}))

	paths := map[string]spec.PathItem{}
	tagSet := map[string]struct{}{}

	for _, m := range r.routes {
		op := spec.NewOperation(operationID(m.Route)).
			WithSummary(m.Summary).
			WithDescription(m.Description).
			WithTags(m.Tags...).
			WithProduces("application/json")
		for _, t := range m.Tags {
			tagSet[t] = struct{}{}
		}

		_, names := toGinPath(m.Path)
		for _, name := range names {
			p := spec.PathParam(name).Typed("string", "")
			if desc := m.Params[name]; desc != "" {
				p.WithDescription(desc)
			}
			op.AddParam(p)
		}

		if m.Query != nil {
			for _, p := range b.queryParams(m.Query) {
				op.AddParam(p)
			}
		}
		if m.Body != nil {
			op.WithConsumes("application/json")
			op.AddParam(spec.BodyParam("body", b.schemaFor(reflect.TypeOf(m.Body))).AsRequired())
		}
		if m.Form != nil || len(m.Files) > 0 {
			op.WithConsumes("multipart/form-data")
			for _, f := range m.Files {
				op.AddParam(spec.FileParam(f).AsRequired())
			}
			if m.Form != nil {
				for _, p := range b.formParams(m.Form) {
					op.AddParam(p)
				}
			}
		}

		for code, resp := range m.Responses {
			sr := spec.NewResponse().WithDescription(resp.Description)
			if resp.Body != nil {
				sr.WithSchema(b.schemaFor(reflect.TypeOf(resp.Body)))
			}
			op.RespondsWith(code, sr)
		}

		defaultErr := func(code int, desc string) {
			if _, ok := m.Responses[code]; !ok {
				op.RespondsWith(code, spec.NewResponse().WithDescription(desc).WithSchema(errorRef))
			}
		}
		if !m.Public {
			op.SecuredWith(bearerAuth)
			defaultErr(http.StatusUnauthorized, "Missing or invalid bearer token")
			if m.Permission != "" {
				defaultErr(http.StatusForbidden, "Insufficient permissions")
			}
		}
		if m.Query != nil || m.Body != nil || m.Form != nil {
			defaultErr(http.StatusUnprocessableEntity, "Validation failed")
		}
		defaultErr(http.StatusInternalServerError, "Internal server error")

		item := paths[m.fullPath]
		setOperation(&item, m.Method, op)
		paths[m.fullPath] = item
	}

	tags := make([]spec.Tag, 0, len(tagSet))
	for t := range tagSet {
		tags = append(tags, spec.NewTag(t, "", nil))
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })

	return &spec.Swagger{
		SwaggerProps: spec.SwaggerProps{
			Swagger: "2.0",
			Info: &spec.Info{InfoProps: spec.InfoProps{
				Title:       r.info.Title,
				Description: r.info.Description,
				Version:     r.info.Version,
			}},
			BasePath:    r.info.BasePath,
			Consumes:    []string{"application/json"},
			Produces:    []string{"application/json"},
			Paths:       &spec.Paths{Paths: paths},
			Definitions: b.defs,
			SecurityDefinitions: spec.SecurityDefinitions{bearerAuth: bearerScheme()},
			Tags: tags,
		},
	}
}

func bearerScheme() *spec.SecurityScheme {
	s := spec.APIKeyAuth("Authorization", "header")
	s.Description = "Bearer <token>"
	return s
}

func setOperation(item *spec.PathItem, method string, op *spec.Operation) {
	switch method {
	case http.MethodGet:
		item.Get = op
	case http.MethodPost:
		item.Post = op
	case http.MethodPut:
		item.Put = op
	case http.MethodPatch:
		item.Patch = op
	case http.MethodDelete:
		item.Delete = op
	case http.MethodHead:
		item.Head = op
	case http.MethodOptions:
		item.Options = op
	}
}

// operationID: GET /contests/{contestId}/awards -> getContestsContestIdAwards
func operationID(rt Route) string {
	var sb strings.Builder
	sb.WriteString(strings.ToLower(rt.Method))
	for _, seg := range strings.Split(rt.Path, "/") {
		seg = strings.Trim(seg, "{}")
		for _, part := range strings.FieldsFunc(seg, func(r rune) bool { return r == '-' || r == '_' }) {
			sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}
	return sb.String()
}

// ---------------- swag ----------------

// docHolder отдает gin-swagger последний опубликованный документ.
// swag.Register паникует при повторной регистрации имени, поэтому регистрируемся один раз.
type docHolder struct {
	doc atomic.Value
}

func (d *docHolder) ReadDoc() string {
	s, _ := d.doc.Load().(string)
	return s
}

var (
	holder       = &docHolder{}
	registerOnce sync.Once
)

// Publish сериализует документ и делает его доступным через swag.ReadDoc
func (r *Registry) Publish() ([]byte, error) {
	raw, err := json.Marshal(r.Document())
	if err != nil {
		return nil, err
	}
	holder.doc.Store(string(raw))
	registerOnce.Do(func() { swag.Register(swag.Name, holder) })
	return raw, nil
}

// Handler отдает документ в JSON (GET /openapi.json)
func (r *Registry) Handler() (gin.HandlerFunc, error) {
	raw, err := r.Publish()
	if err != nil {
		return nil, err
	}
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
	}, nil
}
