// Package translate renders user facing messages in the caller's locale.
package translate

import (
	"errors"

	"github.com/jeandeaual/go-locale"
	log "github.com/sirupsen/logrus"

	"golang.org/x/text/message"
)

// DefaultLocale is used when the environment declares no locale.
const DefaultLocale = "en-US"

var printer = NewPrinter(Locales()...)

// Locales returns the locales of the environment, most preferred first.
func Locales() []string {
	locales, err := locale.GetLocales()
	if err != nil {
		log.WithError(err).Debug("apbrom: locale")
	}

	if len(locales) == 0 {
		locales = []string{DefaultLocale}
	}

	return locales
}

// NewPrinter returns a message printer for the best match of locales.
func NewPrinter(locales ...string) *message.Printer {
	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Error translates an en-US message into a new error.
func Error(key message.Reference, args ...any) error {
	return errors.New(From(key, args...))
}
