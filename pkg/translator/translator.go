package translator

import (
	"embed"
	"io/fs"
	"os"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed translation/*.toml
var embeddedTranslations embed.FS

var Translator *i18n.Bundle

var (
	supportedTags = []language.Tag{language.English}
	matcher       = language.NewMatcher(supportedTags)
)

type Config struct {
	// TranslationFolder overrides the catalogues compiled into the binary when set.
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	supportedTags = parseLanguages(cfg.SupportedLanguages)
	matcher = language.NewMatcher(supportedTags)

	var (
		fsys fs.FS = embeddedTranslations
		dir        = "translation"
	)
	if cfg.TranslationFolder != "" {
		fsys = os.DirFS(cfg.TranslationFolder)
		dir = "."
	}

	lstFiles, err := fs.ReadDir(fsys, dir)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() {
			continue
		}

		if _, err := Translator.LoadMessageFileFS(fsys, path.Join(dir, f.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

// Match picks the best supported language for an Accept-Language header value.
func Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return LanguageEn
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return LanguageEn
	}

	base, _ := supportedTags[index].Base()
	return base.String()
}

// parseLanguages keeps English first so it stays the matcher's fallback.
func parseLanguages(languages []string) []language.Tag {
	tags := []language.Tag{language.English}
	for _, lang := range languages {
		tag, err := language.Parse(lang)
		if err != nil || tag == language.English {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}
