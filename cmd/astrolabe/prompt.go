package main

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/khaledhosny/astrolabe/internal/config"
	"github.com/khaledhosny/astrolabe/pkg/graphics"
	"github.com/khaledhosny/astrolabe/pkg/settings"
	"github.com/khaledhosny/astrolabe/pkg/text"
)

// promptAxes walks the user through the sweep axes, seeding every prompt
// with the current configuration.
func promptAxes(cfg *config.Config) error {
	languages := text.NewCatalogue().Languages()
	if err := survey.AskOne(&survey.MultiSelect{
		Message: "Languages to engrave:",
		Options: languages,
		Default: cfg.Languages,
	}, &cfg.Languages, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	var typeNames []string
	for _, t := range settings.Types() {
		typeNames = append(typeNames, string(t))
	}
	if err := survey.AskOne(&survey.MultiSelect{
		Message: "Instrument types:",
		Options: typeNames,
		Default: cfg.Types,
	}, &cfg.Types, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	var formatNames []string
	for _, f := range graphics.Formats() {
		formatNames = append(formatNames, string(f))
	}
	if err := survey.AskOne(&survey.MultiSelect{
		Message: "Output formats:",
		Options: formatNames,
		Default: cfg.Formats,
	}, &cfg.Formats, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	var themeNames []string
	for _, th := range settings.Themes() {
		themeNames = append(themeNames, string(th))
	}
	if err := survey.AskOne(&survey.Select{
		Message: "Color theme:",
		Options: themeNames,
		Default: cfg.Theme,
	}, &cfg.Theme); err != nil {
		return err
	}

	defaults := make([]string, len(cfg.Latitudes))
	for i, lat := range cfg.Latitudes {
		defaults[i] = fmt.Sprintf("%d", lat)
	}
	var raw string
	if err := survey.AskOne(&survey.Input{
		Message: "Latitudes (degrees, comma-separated, negative south):",
		Default: strings.Join(defaults, ","),
	}, &raw, survey.WithValidator(func(ans interface{}) error {
		s, _ := ans.(string)
		_, err := parseInts(s)
		return err
	})); err != nil {
		return err
	}
	lats, err := parseInts(raw)
	if err != nil {
		return err
	}
	cfg.Latitudes = lats

	if err := survey.AskOne(&survey.Input{
		Message: "Output directory:",
		Default: cfg.OutputDir,
	}, &cfg.OutputDir); err != nil {
		return err
	}
	return nil
}
