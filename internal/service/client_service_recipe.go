package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-cookbook/internal/logger"
	"github.com/MKhiriev/go-cookbook/internal/store"
	"github.com/MKhiriev/go-cookbook/internal/utils"
	"github.com/MKhiriev/go-cookbook/internal/validators"
	"github.com/MKhiriev/go-cookbook/models"
)

// SeededUsername is the account whose empty collection is filled with the
// demo recipes on load.
const SeededUsername = "admin"

type clientRecipeService struct {
	mu       sync.Mutex
	username string
	loaded   bool
	recipes  []models.Recipe

	repo      store.RecipeRepository
	validator validators.Validator
	ids       utils.IDGenerator
	clock     utils.Clock
	logger    *logger.Logger
}

func NewClientRecipeService(repo store.RecipeRepository, ids utils.IDGenerator, clock utils.Clock, logger *logger.Logger) ClientRecipeService {
	return &clientRecipeService{
		repo:      repo,
		validator: validators.NewRecipeValidator(),
		ids:       ids,
		clock:     clock,
		logger:    logger,
	}
}

func (r *clientRecipeService) Load(ctx context.Context, username string) ([]models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.load(ctx, username); err != nil {
		return nil, err
	}

	if len(r.recipes) == 0 && username == SeededUsername {
		r.logger.Info().Str("func", "clientRecipeService.Load").Str("username", username).Msg("seeding demo recipes")
		if err := r.commit(ctx, DemoRecipes(r.ids, r.clock)); err != nil {
			return nil, err
		}
	}

	return slices.Clone(r.recipes), nil
}

func (r *clientRecipeService) load(ctx context.Context, username string) error {
	recipes, err := r.repo.Load(ctx, username)
	if err != nil {
		r.logger.Err(err).Str("func", "clientRecipeService.load").Str("username", username).Msg("error loading recipes")
		return fmt.Errorf("load recipes: %w", err)
	}

	r.username = username
	r.recipes = recipes
	r.loaded = true

	return nil
}

func (r *clientRecipeService) Save(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.save(ctx)
}

func (r *clientRecipeService) save(ctx context.Context) error {
	return r.persist(ctx, r.recipes)
}

// commit persists next and only then makes it the in-memory collection.
// A failed write leaves the collection as it was.
func (r *clientRecipeService) commit(ctx context.Context, next []models.Recipe) error {
	if err := r.persist(ctx, next); err != nil {
		return err
	}

	r.recipes = next
	return nil
}

func (r *clientRecipeService) persist(ctx context.Context, recipes []models.Recipe) error {
	if !r.loaded {
		return ErrNotLoaded
	}

	if err := r.repo.Save(ctx, r.username, recipes); err != nil {
		r.logger.Err(err).Str("func", "clientRecipeService.persist").Str("username", r.username).Msg("error saving recipes")
		return fmt.Errorf("save recipes: %w", err)
	}

	return nil
}

func (r *clientRecipeService) Recipes() []models.Recipe {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.recipes)
}

func (r *clientRecipeService) Add(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	recipe, err := r.prepare(ctx, recipe)
	if err != nil {
		return models.Recipe{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.recipes = append(r.recipes, recipe)

	return recipe, nil
}

func (r *clientRecipeService) Create(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	recipe, err := r.prepare(ctx, recipe)
	if err != nil {
		return models.Recipe{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := append(slices.Clone(r.recipes), recipe)
	if err = r.commit(ctx, next); err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

// prepare applies the creation defaults and validates recipe.
func (r *clientRecipeService) prepare(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	if recipe.Category == "" {
		recipe.Category = models.DefaultCategory
	}

	if err := r.validator.Validate(ctx, recipe); err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if recipe.ID == "" {
		recipe.ID = r.ids.Generate()
	}
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = r.clock()
	}

	return recipe, nil
}

func (r *clientRecipeService) RemoveAt(index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkIndex(index); err != nil {
		return err
	}

	r.recipes = slices.Delete(r.recipes, index, index+1)
	return nil
}

func (r *clientRecipeService) ToggleFavorite(index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkIndex(index); err != nil {
		return err
	}

	r.recipes[index].IsFavorite = !r.recipes[index].IsFavorite
	return nil
}

func (r *clientRecipeService) ToggleFavoriteByID(ctx context.Context, id string) (models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	index, err := r.indexOf(id)
	if err != nil {
		return models.Recipe{}, err
	}

	next := slices.Clone(r.recipes)
	next[index].IsFavorite = !next[index].IsFavorite
	if err = r.commit(ctx, next); err != nil {
		return models.Recipe{}, err
	}

	return next[index], nil
}

func (r *clientRecipeService) IndexByID(id string) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexByID(id)
	return i, i >= 0
}

func (r *clientRecipeService) indexByID(id string) int {
	return slices.IndexFunc(r.recipes, func(recipe models.Recipe) bool {
		return recipe.ID == id
	})
}

func (r *clientRecipeService) indexOf(id string) (int, error) {
	index := r.indexByID(id)
	if index < 0 {
		r.logger.Error().Str("func", "clientRecipeService.indexOf").Str("id", id).Msg("recipe not found")
		return 0, fmt.Errorf("%w: recipe %s", ErrIndexOutOfRange, id)
	}

	return index, nil
}

func (r *clientRecipeService) Delete(ctx context.Context, session models.Session, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkIndex(index); err != nil {
		return err
	}

	return r.deleteAt(ctx, session, index)
}

func (r *clientRecipeService) DeleteByID(ctx context.Context, session models.Session, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	index, err := r.indexOf(id)
	if err != nil {
		return err
	}

	return r.deleteAt(ctx, session, index)
}

func (r *clientRecipeService) deleteAt(ctx context.Context, session models.Session, index int) error {
	recipe := r.recipes[index]
	if !recipe.IsAuthoredBy(session.Username) {
		r.logger.Debug().
			Str("func", "clientRecipeService.deleteAt").
			Str("username", session.Username).
			Str("author", recipe.Author).
			Msg("delete rejected")
		return ErrNotRecipeAuthor
	}

	next := slices.Delete(slices.Clone(r.recipes), index, index+1)
	return r.commit(ctx, next)
}

func (r *clientRecipeService) AddDemoRecipes(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.loaded || r.username != username {
		if err := r.load(ctx, username); err != nil {
			return err
		}
	}

	next := append(slices.Clone(r.recipes), DemoRecipes(r.ids, r.clock)...)
	return r.commit(ctx, next)
}

func (r *clientRecipeService) checkIndex(index int) error {
	if index < 0 || index >= len(r.recipes) {
		r.logger.Error().
			Str("func", "clientRecipeService.checkIndex").
			Int("index", index).
			Int("size", len(r.recipes)).
			Msg("recipe index out of range")
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(r.recipes))
	}

	return nil
}
