package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"wedding-registry-backend/internal/model"
	"wedding-registry-backend/internal/repository"
)

func newContentTestService(t *testing.T) (ContentService, repository.ContentRepository) {
	t.Helper()

	db := newTestDB(t)
	repo := repository.NewContentRepository(db)
	return NewContentService(repo), repo
}

func TestGetSectionCreatesDefaults(t *testing.T) {
	svc, _ := newContentTestService(t)

	content, err := svc.GetSection(context.Background(), "home")
	if err != nil {
		t.Fatalf("GetSection: %v", err)
	}
	if content.Content == "" {
		t.Error("home section has no default text")
	}

	info, err := svc.GetSection(context.Background(), "informacoes")
	if err != nil {
		t.Fatalf("GetSection informacoes: %v", err)
	}
	var fields map[string]string
	if err := json.Unmarshal([]byte(info.Content), &fields); err != nil {
		t.Fatalf("informacoes default is not JSON: %v", err)
	}
	for _, key := range []string{"cerimonia", "recepcao", "dressCode", "hospedagem", "transporte"} {
		if fields[key] == "" {
			t.Errorf("informacoes default missing %q", key)
		}
	}
}

func TestGetSectionConvertsLegacyInformacoes(t *testing.T) {
	svc, repo := newContentTestService(t)

	legacy := "Cerimônia\nIgreja Matriz às 19h\n\nRecepção\nSalão Central\n\nDress Code\nTraje formal\n\nHospedagem\nHotel Central\n\nTransporte\nVans saindo da igreja\n"
	err := repo.Create(context.Background(), &model.Content{Section: "informacoes", Content: legacy})
	if err != nil {
		t.Fatalf("seed legacy content: %v", err)
	}

	content, err := svc.GetSection(context.Background(), "informacoes")
	if err != nil {
		t.Fatalf("GetSection: %v", err)
	}

	var fields map[string]string
	if err := json.Unmarshal([]byte(content.Content), &fields); err != nil {
		t.Fatalf("converted content is not JSON: %v", err)
	}
	if fields["cerimonia"] != "Igreja Matriz às 19h" {
		t.Errorf("cerimonia = %q", fields["cerimonia"])
	}
	if fields["dressCode"] != "Traje formal" {
		t.Errorf("dressCode = %q", fields["dressCode"])
	}
	if _, ok := fields["cerimonia_address"]; !ok {
		t.Error("converted content missing cerimonia_address placeholder")
	}

	// conversion is persisted: a second read returns JSON directly
	again, err := svc.GetSection(context.Background(), "informacoes")
	if err != nil {
		t.Fatalf("second GetSection: %v", err)
	}
	if again.Content != content.Content {
		t.Error("second read returned different content")
	}
}

func TestUpdateSectionValidatesInformacoes(t *testing.T) {
	svc, _ := newContentTestService(t)

	_, err := svc.UpdateSection(context.Background(), "informacoes", "texto solto")
	if !errors.Is(err, ErrInvalidContent) {
		t.Fatalf("plain text: err = %v, want ErrInvalidContent", err)
	}

	_, err = svc.UpdateSection(context.Background(), "informacoes", `{"cerimonia": "Igreja"}`)
	if !errors.Is(err, ErrInvalidContent) {
		t.Fatalf("missing fields: err = %v, want ErrInvalidContent", err)
	}
	if !strings.Contains(err.Error(), "recepcao") {
		t.Errorf("error does not name missing field: %v", err)
	}

	valid := `{"cerimonia":"a","recepcao":"b","dressCode":"c","hospedagem":"d","transporte":"e"}`
	content, err := svc.UpdateSection(context.Background(), "informacoes", valid)
	if err != nil {
		t.Fatalf("valid update: %v", err)
	}
	if content.Content != valid {
		t.Errorf("stored content = %q", content.Content)
	}
}

func TestUpdateSectionUpsertsFreeText(t *testing.T) {
	svc, _ := newContentTestService(t)

	created, err := svc.UpdateSection(context.Background(), "historia", "Nosso começo.")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Content != "Nosso começo." {
		t.Errorf("created content = %q", created.Content)
	}

	updated, err := svc.UpdateSection(context.Background(), "historia", "Nosso começo, revisado.")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Content != "Nosso começo, revisado." {
		t.Errorf("updated content = %q", updated.Content)
	}

	got, err := svc.GetSection(context.Background(), "historia")
	if err != nil {
		t.Fatalf("GetSection: %v", err)
	}
	if got.Content != "Nosso começo, revisado." {
		t.Errorf("persisted content = %q", got.Content)
	}
}
