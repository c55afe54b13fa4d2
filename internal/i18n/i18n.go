package i18n

import (
	"embed"
	"io/fs"
	"math/big"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/mht-transfers/internal/config"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFiles embed.FS

// Data is passed to a message as template data.
type Data map[string]string

type Service struct {
	bundle      *goi18n.Bundle
	defaultLang language.Tag
	tags        []language.Tag
	matcher     language.Matcher
}

// New loads the embedded message files and prepares matching against them.
func New(cfg config.I18n) (*Service, error) {
	bundle := goi18n.NewBundle(cfg.DefaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(messageFiles, "messages/*.toml")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list message files")
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(messageFiles, file); err != nil {
			return nil, errors.Wrapf(err, "failed to load message file %s", file)
		}
	}

	tags := bundle.LanguageTags()

	return &Service{
		bundle:      bundle,
		defaultLang: cfg.DefaultLanguage,
		tags:        tags,
		matcher:     language.NewMatcher(tags),
	}, nil
}

// Translate resolves key for lang. Missing keys fall back to the key itself.
func (s *Service) Translate(key string, lang language.Tag, data ...Data) string {
	localizer := goi18n.NewLocalizer(s.bundle, lang.String(), s.defaultLang.String())

	cfg := &goi18n.LocalizeConfig{MessageID: key}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}

	msg, err := localizer.Localize(cfg)
	if err != nil {
		log.Debug().Err(err).Str("key", key).Str("lang", lang.String()).Msg("Failed to translate message")
		return key
	}

	return msg
}

// ParseAcceptLanguage returns the best supported language for the given Accept-Language header.
func (s *Service) ParseAcceptLanguage(header string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return s.defaultLang
	}

	_, index, confidence := s.matcher.Match(tags...)
	if confidence == language.No {
		return s.defaultLang
	}

	return s.tags[index]
}

func (s *Service) DefaultLanguage() language.Tag {
	return s.defaultLang
}

func (s *Service) TransferSucceeded(amount *big.Int, recipient string) string {
	return s.For(s.defaultLang).TransferSucceeded(amount, recipient)
}

func (s *Service) TransferFailed() string {
	return s.For(s.defaultLang).TransferFailed()
}

// For returns the transfer notification texts in lang.
func (s *Service) For(lang language.Tag) Localized {
	return Localized{service: s, lang: lang}
}

type Localized struct {
	service *Service
	lang    language.Tag
}

func (l Localized) Lang() language.Tag {
	return l.lang
}

func (l Localized) T(key string, data ...Data) string {
	return l.service.Translate(key, l.lang, data...)
}

func (l Localized) TransferSucceeded(amount *big.Int, recipient string) string {
	return l.T("TransferSucceeded", Data{"Amount": amount.String(), "Recipient": recipient})
}

func (l Localized) TransferFailed() string {
	return l.T("TransferFailed")
}
