package preview

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/editorui/internal/errors"
	"github.com/vango-dev/editorui/pkg/layer"
	"github.com/vango-dev/editorui/pkg/render"
	"github.com/vango-dev/editorui/pkg/toolbar"
	"github.com/vango-dev/editorui/pkg/vdom"
)

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	groups := s.groups(s.config.HideScrollSync)

	body := vdom.Div(vdom.ID("editor"),
		vdom.Div(vdom.ID("toolbar-root"),
			toolbar.Render(groups, toolbar.RenderOptions{}),
		),
		vdom.Div(vdom.ID("layer-root"), vdom.Class("te-layer-container")),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	sr := render.NewStreamingRenderer(w, render.RendererConfig{})
	err := sr.RenderPage(render.PageData{
		Body:  body,
		Title: "Toolbar preview",
		Lang:  s.config.Language,
		Meta: []render.MetaTag{
			{Name: "generator", Content: "editorui"},
		},
		Styles:  []string{pageStyle},
		Scripts: []render.ScriptTag{{Inline: liveScript}},
	})
	if err != nil {
		s.logger.Error("page render failed", "error", err)
	}
}

func (s *Server) handleToolbar(w http.ResponseWriter, r *http.Request) {
	hide := s.config.HideScrollSync
	if v := r.URL.Query().Get("hideScrollSync"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, errors.New("E063").WithDetail("hideScrollSync: "+v))
			return
		}
		hide = b
	}
	writeJSON(w, http.StatusOK, map[string]any{"groups": s.groups(hide)})
}

func (s *Server) handleLayer(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "kind")
	query := r.URL.Query()

	var pos layer.Pos
	for _, p := range []struct {
		key string
		dst *int
	}{{"x", &pos.X}, {"y", &pos.Y}} {
		v := query.Get(p.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, errors.New("E063").WithDetail(p.key+": "+v))
			return
		}
		*p.dst = n
	}

	d, ok := s.layers.Create(name, layer.Payload{Pos: pos})
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("E021").WithDetail("kind "+name))
		return
	}

	props := vdom.Props{}
	for k, vs := range query {
		if k == "x" || k == "y" || len(vs) == 0 {
			continue
		}
		props[k] = vs[0]
	}

	html, err := s.renderer.RenderToString(popup(d, props))
	if err != nil {
		s.logger.Error("layer render failed", "kind", name, "error", err)
		writeError(w, http.StatusInternalServerError, errors.FromError(err, "E008"))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// popup wraps a layer body in its positioned container.
func popup(d layer.Descriptor, props vdom.Props) *vdom.VNode {
	return vdom.Div(
		vdom.Class("te-popup", d.ClassName),
		vdom.Data("kind", d.Kind.String()),
		vdom.StyleAttr(fmt.Sprintf("left: %dpx; top: %dpx", d.Pos.X, d.Pos.Y)),
		vdom.If(d.HeaderText != "", vdom.Div(vdom.Class("te-popup-header"), d.HeaderText)),
		vdom.Div(vdom.Class("te-popup-body"), d.Render(props)),
	)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err *errors.UIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":` + err.FormatJSON() + "}\n"))
}

const pageStyle = `.te-toolbar-section { display: flex; gap: 4px; }
.te-toolbar-divider { width: 1px; background: #ddd; }
.te-popup { position: absolute; background: #fff; border: 1px solid #ccc; }`
