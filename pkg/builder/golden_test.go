package builder_test

import (
	"testing"

	"github.com/goliatone/go-ionform/pkg/builder"
	"github.com/goliatone/go-ionform/pkg/ion"
	"github.com/goliatone/go-ionform/pkg/model"
	"github.com/goliatone/go-ionform/pkg/testsupport"
)

func superHeroForm() model.Form {
	meta := ion.NewLink("/heroes", "create-form")
	meta.Method = "POST"
	meta.Title = "Register a hero"

	return builder.New[SuperHero](builder.WithMeta(meta)).
		AddField(func(h *SuperHero) any { return &h.Nickname }, model.AttributeOverrides{
			Required:  model.Ptr(true),
			MinLength: model.Ptr(2),
		}).
		AddField(func(h *SuperHero) any { return &h.RealName }).
		AddField(func(h *SuperHero) any { return &h.BirthDate }).
		AddField(func(h *SuperHero) any { return &h.CurrentWinningStreakCount }, model.AttributeOverrides{
			Min:     model.Ptr(0.0),
			Enabled: model.Ptr(false),
		}).
		AddStringOptions(func(h *SuperHero) any { return &h.Cities }, []string{"Gotham", "Metropolis", "Star City"}).
		AddField(func(h *SuperHero) any { return &h.Motto }).
		Build()
}

func TestSuperHeroForm_Golden(t *testing.T) {
	testsupport.AssertJSONGolden(t, "testdata/superhero_form.json", superHeroForm())
}

func TestSuperHeroSchema_Golden(t *testing.T) {
	testsupport.AssertJSONGolden(t, "testdata/superhero_schema.json", superHeroForm().CompileSchema())
}
