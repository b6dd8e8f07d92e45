package main

import (
	"testing"

	"github.com/limaJavier/examscheduling/pkg/config"
	"github.com/limaJavier/examscheduling/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestOverrideConfig(t *testing.T) {
	t.Run("Flags fix an invalid config value", func(t *testing.T) {
		//** Arrange
		cfg := config.Default()
		cfg.Order = "random"

		//** Act
		cfg = overrideConfig(cfg, "", "", "Degree")

		//** Assert
		assert.Nil(t, cfg.Validate())
		assert.Equal(t, "degree", cfg.Order)
	})

	t.Run("Empty flags keep config values", func(t *testing.T) {
		cfg := config.Default()
		cfg.OutputFormat = "json"
		cfg.InputFormat = "csv"

		overridden := overrideConfig(cfg, "", "", "")

		assert.Equal(t, cfg, overridden)
	})

	t.Run("Every flag overrides its value", func(t *testing.T) {
		overridden := overrideConfig(config.Default(), "JSON", "csv", "identifier")

		assert.Equal(t, "json", overridden.InputFormat)
		assert.Equal(t, "csv", overridden.OutputFormat)
		assert.Equal(t, "identifier", overridden.Order)
	})
}

func TestMostConflicting(t *testing.T) {
	t.Run("Shared course", func(t *testing.T) {
		//** Arrange
		graph := model.BuildConflictGraph(model.Roster{
			{Student: "student1", Courses: [4]string{"B", "A", "C", "D"}},
			{Student: "student2", Courses: [4]string{"A", "E", "F", "G"}},
		})

		//** Act
		course, neighbors, ok := mostConflicting(graph)

		//** Assert
		assert.True(t, ok)
		assert.Equal(t, "A", course)
		assert.Equal(t, []string{"B", "C", "D", "E", "F", "G"}, neighbors)
	})

	t.Run("Empty graph", func(t *testing.T) {
		_, _, ok := mostConflicting(model.NewConflictGraph())
		assert.False(t, ok)
	})
}
