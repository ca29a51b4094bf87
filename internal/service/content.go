package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"wedding-registry-backend/internal/model"
	"wedding-registry-backend/internal/repository"
)

// infoRequiredFields are the mandatory keys of the JSON-structured
// "informacoes" section.
var infoRequiredFields = []string{"cerimonia", "recepcao", "dressCode", "hospedagem", "transporte"}

type ContentService interface {
	GetSection(ctx context.Context, section string) (*model.Content, error)
	UpdateSection(ctx context.Context, section, text string) (*model.Content, error)
}

type contentServiceImpl struct {
	contentRepo repository.ContentRepository
}

func NewContentService(contentRepo repository.ContentRepository) ContentService {
	return &contentServiceImpl{
		contentRepo: contentRepo,
	}
}

func (s *contentServiceImpl) GetSection(ctx context.Context, section string) (*model.Content, error) {
	content, err := s.contentRepo.FindBySection(ctx, section)
	if err != nil {
		return nil, fmt.Errorf("find content: %w", err)
	}

	if content == nil {
		content = &model.Content{
			Section: section,
			Content: defaultContent(section),
		}
		if err := s.contentRepo.Create(ctx, content); err != nil {
			return nil, fmt.Errorf("create default content: %w", err)
		}
	}

	if section != "informacoes" {
		return content, nil
	}

	// Legacy rows stored informacoes as a single block of text; convert them
	// to the JSON field format on first read.
	var parsed map[string]interface{}
	if json.Unmarshal([]byte(content.Content), &parsed) == nil {
		return content, nil
	}

	converted, err := json.Marshal(legacyInfoToFields(content.Content))
	if err != nil {
		return nil, fmt.Errorf("convert legacy informacoes: %w", err)
	}

	return s.contentRepo.UpdateBySection(ctx, section, string(converted))
}

func (s *contentServiceImpl) UpdateSection(ctx context.Context, section, text string) (*model.Content, error) {
	if section == "informacoes" {
		var parsed map[string]interface{}
		if err := json.Unmarshal([]byte(text), &parsed); err != nil {
			return nil, fmt.Errorf("%w: o conteúdo deve ser um JSON válido", ErrInvalidContent)
		}

		var missing []string
		for _, field := range infoRequiredFields {
			if _, ok := parsed[field]; !ok {
				missing = append(missing, field)
			}
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("%w: campos obrigatórios ausentes: %s", ErrInvalidContent, strings.Join(missing, ", "))
		}
	}

	existing, err := s.contentRepo.FindBySection(ctx, section)
	if err != nil {
		return nil, fmt.Errorf("find content: %w", err)
	}

	if existing == nil {
		content := &model.Content{Section: section, Content: text}
		if err := s.contentRepo.Create(ctx, content); err != nil {
			return nil, fmt.Errorf("create content: %w", err)
		}
		return content, nil
	}

	return s.contentRepo.UpdateBySection(ctx, section, text)
}

func legacyInfoToFields(text string) map[string]string {
	fields := map[string]string{
		"cerimonia":  extractInfoSection(text, "Cerimônia"),
		"recepcao":   extractInfoSection(text, "Recepção"),
		"dressCode":  extractInfoSection(text, "Dress Code"),
		"hospedagem": extractInfoSection(text, "Hospedagem"),
		"transporte": extractInfoSection(text, "Transporte"),
	}

	for _, key := range []string{"cerimonia", "recepcao", "hospedagem", "transporte"} {
		fields[key+"_address"] = ""
		fields[key+"_photo"] = ""
	}
	fields["dressCode_photo"] = ""

	return fields
}

func extractInfoSection(text, title string) string {
	re := regexp.MustCompile(`(?is)` + regexp.QuoteMeta(title) + `[^\n]*\n(.*?)(\n\n|$)`)
	match := re.FindStringSubmatch(text)
	if len(match) > 1 {
		return strings.TrimSpace(match[1])
	}
	return ""
}

func defaultContent(section string) string {
	if section == "informacoes" {
		defaults, _ := json.Marshal(map[string]string{
			"cerimonia":          "Concatedral de São Pedro dos Clérigos – às 19h",
			"cerimonia_address":  "Av. Dantas Barreto, 677 - São José, Recife - PE",
			"cerimonia_photo":    "cerimonia.jpg",
			"recepcao":           "Espaço Dom – R. das Oficinas, 15 – Pina",
			"recepcao_address":   "R. das Oficinas, 15 - Pina, Recife - PE",
			"recepcao_photo":     "recepcao.jpg",
			"dressCode":          "Formal – porque esse dia merece um look à altura!",
			"dressCode_photo":    "dresscode.jpg",
			"hospedagem":         "Hotel Luzeiros Recife\nIbis Boa Viagem",
			"hospedagem_address": "Av. Boa Viagem, 5000 - Boa Viagem, Recife - PE",
			"hospedagem_photo":   "hospedagem.jpg",
			"transporte":         "Parceria com TeleTáxi na saída da igreja!",
			"transporte_address": "Av. Dantas Barreto, 677 - São José, Recife - PE",
			"transporte_photo":   "transporte.jpg",
		})
		return string(defaults)
	}

	defaults := map[string]string{
		"home":     "Estamos muito felizes em ter você aqui!",
		"historia": "Era uma vez… um encontro que mudou tudo.",
	}
	return defaults[section]
}
