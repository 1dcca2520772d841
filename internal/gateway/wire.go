package gateway

import "strings"

type wirePart struct {
	Text string `json:"text"`
}

type wireContent struct {
	Role  string     `json:"role,omitempty"`
	Parts []wirePart `json:"parts"`
}

type wireTool struct {
	GoogleSearch *struct{} `json:"googleSearch,omitempty"`
}

type wireGenerationConfig struct {
	Temperature *float64 `json:"temperature,omitempty"`
}

type wireRequest struct {
	Contents          []wireContent         `json:"contents"`
	SystemInstruction *wireContent          `json:"systemInstruction,omitempty"`
	Tools             []wireTool            `json:"tools,omitempty"`
	GenerationConfig  *wireGenerationConfig `json:"generationConfig,omitempty"`
}

func newWireRequest(r Request) wireRequest {
	var req wireRequest
	for _, t := range r.Contents {
		req.Contents = append(req.Contents, wireContent{
			Role:  string(t.Role),
			Parts: []wirePart{{Text: t.Text}},
		})
	}
	if r.SystemInstruction != "" {
		req.SystemInstruction = &wireContent{Parts: []wirePart{{Text: r.SystemInstruction}}}
	}
	if r.Grounded {
		req.Tools = []wireTool{{GoogleSearch: &struct{}{}}}
	}
	if r.Temperature != nil {
		req.GenerationConfig = &wireGenerationConfig{Temperature: r.Temperature}
	}
	return req
}

type wireResponse struct {
	Candidates []struct {
		Content struct {
			Parts []wirePart `json:"parts"`
		} `json:"content"`
		GroundingMetadata *struct {
			GroundingChunks []struct {
				Web *struct {
					URI   string `json:"uri"`
					Title string `json:"title"`
				} `json:"web"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

// text joins the parts of the first candidate
func (w wireResponse) text() string {
	if len(w.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range w.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

// sources lists web grounding chunks of the first candidate; chunks without a URI are skipped
func (w wireResponse) sources() []Source {
	sources := []Source{}
	if len(w.Candidates) == 0 || w.Candidates[0].GroundingMetadata == nil {
		return sources
	}
	for _, chunk := range w.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = "External Source"
		}
		sources = append(sources, Source{Title: title, URI: chunk.Web.URI})
	}
	return sources
}
