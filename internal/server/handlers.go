package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"paletteai/internal/palette"
	"paletteai/pkg/logging"
)

const maxRequestBody = 64 << 10

type detailBody struct {
	Detail any `json:"detail"`
}

// validationIssue mirrors the FastAPI 422 error entries the web client
// already understands.
type validationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type generateRequest struct {
	BusinessType *string   `json:"businessType"`
	Industry     *string   `json:"industry"`
	Audience     *string   `json:"audience"`
	DesignStyle  *string   `json:"designStyle"`
	ColorPref    *string   `json:"colorPref"`
	Usage        *[]string `json:"usage"`
}

func (r generateRequest) form() (palette.FormInput, []validationIssue) {
	var issues []validationIssue
	str := func(name string, v *string) string {
		if v == nil {
			issues = append(issues, validationIssue{Loc: []string{"body", name}, Msg: "Field required", Type: "missing"})
			return ""
		}
		return *v
	}
	f := palette.FormInput{
		BusinessType: str("businessType", r.BusinessType),
		Industry:     str("industry", r.Industry),
		Audience:     str("audience", r.Audience),
		DesignStyle:  str("designStyle", r.DesignStyle),
		ColorPref:    str("colorPref", r.ColorPref),
	}
	if r.Usage == nil {
		issues = append(issues, validationIssue{Loc: []string{"body", "usage"}, Msg: "Field required", Type: "missing"})
	} else {
		f.Usage = append([]string{}, *r.Usage...)
	}
	return f, issues
}

type generateResponse struct {
	Palette *palette.Palette `json:"palette"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, code int, detail any) {
	writeJSON(w, code, detailBody{Detail: detail})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "PaletteAI Backend is running"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "could not read request body")
		return
	}

	var req generateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, []validationIssue{{
			Loc: []string{"body"}, Msg: err.Error(), Type: "json_invalid",
		}})
		return
	}
	form, issues := req.form()
	if len(issues) > 0 {
		writeDetail(w, http.StatusUnprocessableEntity, issues)
		return
	}

	p, err := s.service.Generate(r.Context(), form)
	switch {
	case errors.Is(err, ErrInvalidModelOutput):
		writeDetail(w, http.StatusInternalServerError, err.Error())
	case err != nil:
		logging.Error("Server", err, "Palette generation failed for %s/%s", form.BusinessType, form.Industry)
		writeDetail(w, http.StatusInternalServerError, fmt.Sprintf("Palette generation failed: %v", err))
	default:
		writeJSON(w, http.StatusOK, generateResponse{Palette: p})
	}
}
