package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cookbook/models"
)

const (
	addFieldTitle = iota
	addFieldIngredients
	addFieldInstructions
	addFieldCategory
	addFieldTime
	addFieldCount
)

type addModel struct {
	title        textinput.Model
	ingredients  textarea.Model
	instructions textarea.Model
	cookingTime  textinput.Model

	categories  []models.Category
	categoryIdx int

	focus      int
	submitting bool
}

func newAddModel() addModel {
	title := textinput.New()
	title.Placeholder = "Recipe title"
	title.CharLimit = 128
	title.Width = 48
	title.Focus()

	ingredients := textarea.New()
	ingredients.Placeholder = "Eggs - 3 pcs, Milk - 50 ml, ..."
	ingredients.SetWidth(48)
	ingredients.SetHeight(3)
	ingredients.ShowLineNumbers = false

	instructions := textarea.New()
	instructions.Placeholder = "1. ..."
	instructions.SetWidth(48)
	instructions.SetHeight(5)
	instructions.ShowLineNumbers = false

	cookingTime := textinput.New()
	cookingTime.Placeholder = strconv.Itoa(models.DefaultCookingTimeMinutes)
	cookingTime.CharLimit = 5
	cookingTime.Width = 8

	categories := models.AssignableCategories()

	return addModel{
		title:        title,
		ingredients:  ingredients,
		instructions: instructions,
		cookingTime:  cookingTime,
		categories:   categories,
		categoryIdx:  max(slices.Index(categories, models.DefaultCategory), 0),
	}
}

func (m addModel) setFocus(focus int) addModel {
	m.title.Blur()
	m.ingredients.Blur()
	m.instructions.Blur()
	m.cookingTime.Blur()

	m.focus = (focus + addFieldCount) % addFieldCount
	switch m.focus {
	case addFieldTitle:
		m.title.Focus()
	case addFieldIngredients:
		m.ingredients.Focus()
	case addFieldInstructions:
		m.instructions.Focus()
	case addFieldTime:
		m.cookingTime.Focus()
	}
	return m
}

func (m addModel) category() models.Category {
	return m.categories[m.categoryIdx]
}

func (m addModel) shiftCategory(delta int) addModel {
	m.categoryIdx = (m.categoryIdx + delta + len(m.categories)) % len(m.categories)
	return m
}

// update forwards msg to the focused widget.
func (m addModel) update(msg tea.Msg) (addModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case addFieldTitle:
		m.title, cmd = m.title.Update(msg)
	case addFieldIngredients:
		m.ingredients, cmd = m.ingredients.Update(msg)
	case addFieldInstructions:
		m.instructions, cmd = m.instructions.Update(msg)
	case addFieldTime:
		m.cookingTime, cmd = m.cookingTime.Update(msg)
	}
	return m, cmd
}

// toRecipe builds the recipe to add. An empty cooking time means the
// default; text that is not a whole number is rejected.
func (m addModel) toRecipe(author string) (models.Recipe, error) {
	minutes := models.DefaultCookingTimeMinutes
	if raw := strings.TrimSpace(m.cookingTime.Value()); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return models.Recipe{}, fmt.Errorf("%w: %q", errInvalidCookingTime, raw)
		}
		minutes = n
	}

	return models.Recipe{
		Title:              strings.TrimSpace(m.title.Value()),
		Ingredients:        strings.TrimSpace(m.ingredients.Value()),
		Instructions:       strings.TrimSpace(m.instructions.Value()),
		Category:           m.category(),
		CookingTimeMinutes: minutes,
		Author:             author,
	}, nil
}

func (m addModel) View() string {
	var b strings.Builder

	b.WriteString(fieldLabel("Title", m.focus == addFieldTitle))
	b.WriteString(m.title.View())
	b.WriteString("\n\n")
	b.WriteString(fieldLabel("Ingredients", m.focus == addFieldIngredients))
	b.WriteString(m.ingredients.View())
	b.WriteString("\n\n")
	b.WriteString(fieldLabel("Instructions", m.focus == addFieldInstructions))
	b.WriteString(m.instructions.View())
	b.WriteString("\n\n")
	b.WriteString(fieldLabel("Category", m.focus == addFieldCategory))
	b.WriteString("◀ ")
	b.WriteString(categoryStyle.Render(m.category().String()))
	b.WriteString(" ▶\n\n")
	b.WriteString(fieldLabel("Cooking time, min", m.focus == addFieldTime))
	b.WriteString(m.cookingTime.View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\nSaving...\n")
	}

	return renderPage("NEW RECIPE", b.String(), "tab: next field  ←/→: category  ctrl+s: save  esc: cancel")
}

func fieldLabel(label string, focused bool) string {
	if focused {
		return selectedStyle.Render("> "+label) + "\n"
	}
	return "  " + label + "\n"
}
