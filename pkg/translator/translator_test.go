package translator_test

import (
	"os"
	"path/filepath"
	"testing"

	"taskmanager/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
)

func localize(t *testing.T, lang, id string) string {
	t.Helper()

	msg, err := i18n.NewLocalizer(translator.Translator, lang).Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		t.Fatalf("unexpected error localizing %q in %q: %v", id, lang, err)
	}
	return msg
}

func TestInitTranslator_LoadsFolderMessages(t *testing.T) {
	dir := t.TempDir()

	content := []byte(`
hello = "Hello english"
taskNotFound = "Nope"
`)
	if err := os.WriteFile(filepath.Join(dir, "en.toml"), content, 0644); err != nil {
		t.Fatalf("failed to write en.toml: %v", err)
	}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	if got := localize(t, translator.LanguageEn, "hello"); got != "Hello english" {
		t.Errorf("expected %q, got %q", "Hello english", got)
	}
	if got := localize(t, translator.LanguageEn, "taskNotFound"); got != "Nope" {
		t.Errorf("expected folder catalogue to replace embedded one, got %q", got)
	}
}

func TestInitTranslator_EmbeddedCatalogues(t *testing.T) {
	translator.InitTranslator(translator.Config{
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	if got := localize(t, translator.LanguageEn, "taskNotFound"); got != "Task not found" {
		t.Errorf("unexpected english message %q", got)
	}
	if got := localize(t, translator.LanguageFr, "taskNotFound"); got != "Tâche introuvable" {
		t.Errorf("unexpected french message %q", got)
	}
	if got := localize(t, translator.LanguageEn, "internalError"); got != "Something went wrong, Try Again!" {
		t.Errorf("unexpected internal error message %q", got)
	}
}

func TestInitTranslator_InvalidFolder(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "/path/does/not/exist",
		SupportedLanguages: []string{translator.LanguageEn},
	})
}

func TestMatch(t *testing.T) {
	translator.InitTranslator(translator.Config{
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cases := map[string]string{
		"":                        translator.LanguageEn,
		"fr":                      translator.LanguageFr,
		"fr-FR,fr;q=0.9,en;q=0.8": translator.LanguageFr,
		"en-GB":                   translator.LanguageEn,
		"de-DE":                   translator.LanguageEn,
	}
	for header, want := range cases {
		if got := translator.Match(header); got != want {
			t.Errorf("Match(%q) = %q, want %q", header, got, want)
		}
	}
}

func TestTranslatorConstants(t *testing.T) {
	if translator.LanguageEn != "en" {
		t.Errorf("expected LanguageEn to be 'en'")
	}
	if translator.LanguageFr != "fr" {
		t.Errorf("expected LanguageFr to be 'fr'")
	}
}
