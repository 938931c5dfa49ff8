package container

import (
	"context"
	"fmt"
	"time"

	"catalog-backend/internal/config"
	infraCache "catalog-backend/internal/infrastructure/cache"
	"catalog-backend/internal/infrastructure/database"
	"catalog-backend/internal/infrastructure/identity"
	"catalog-backend/internal/infrastructure/mirror"
	"catalog-backend/pkg/cache"
	"catalog-backend/pkg/jwt"
	"catalog-backend/pkg/logger"

	"catalog-backend/internal/domains/author"
	authorHandler "catalog-backend/internal/domains/author/handler"
	authorRepo "catalog-backend/internal/domains/author/repository"
	authorService "catalog-backend/internal/domains/author/service"

	"catalog-backend/internal/domains/book"
	bookHandler "catalog-backend/internal/domains/book/handler"
	bookRepo "catalog-backend/internal/domains/book/repository"
	bookService "catalog-backend/internal/domains/book/service"

	"catalog-backend/internal/domains/category"
	categoryHandler "catalog-backend/internal/domains/category/handler"
	categoryRepo "catalog-backend/internal/domains/category/repository"
	categoryService "catalog-backend/internal/domains/category/service"

	identitydomain "catalog-backend/internal/domains/identity"
	identityHandler "catalog-backend/internal/domains/identity/handler"
	identityService "catalog-backend/internal/domains/identity/service"

	"catalog-backend/internal/domains/review"
	reviewHandler "catalog-backend/internal/domains/review/handler"
	reviewRepo "catalog-backend/internal/domains/review/repository"
	reviewService "catalog-backend/internal/domains/review/service"

	"catalog-backend/internal/domains/user"
	userHandler "catalog-backend/internal/domains/user/handler"
	userRepo "catalog-backend/internal/domains/user/repository"
	userService "catalog-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup; a build error means the app must not
// start.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Mirror     mirror.Mirror
	JWTManager *jwt.Manager

	AuthorRepo   author.Repository
	BookRepo     book.Repository
	CategoryRepo category.Repository
	ReviewRepo   review.Repository
	UserRepo     user.Repository

	AuthorService   author.Service
	BookService     book.Service
	CategoryService category.Service
	IdentityService identitydomain.Service
	ReviewService   review.Service
	UserService     user.Service

	AuthorHandler   *authorHandler.AuthorHandler
	BookHandler     *bookHandler.BookHandler
	CategoryHandler *categoryHandler.CategoryHandler
	IdentityHandler *identityHandler.IdentityHandler
	ReviewHandler   *reviewHandler.ReviewHandler
	UserHandler     *userHandler.UserHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	if err := c.initConfig(); err != nil {
		return nil, fmt.Errorf("failed to init config: %w", err)
	}
	if err := c.initInfrastructure(); err != nil {
		return nil, fmt.Errorf("failed to init infrastructure: %w", err)
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	c.Config = cfg
	logger.Init(cfg.App.Environment)

	return nil
}

func (c *Container) initInfrastructure() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.NewPostgresDB(c.Config.Database)
	if err := db.Connect(ctx); err != nil {
		return err
	}
	c.DB = db

	c.Cache = infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := c.Cache.Ping(ctx); err != nil {
		logger.Warn("redis unreachable at startup, caching degraded", err)
	}

	if c.Config.Mirror.Enabled {
		m, err := mirror.NewMinIOMirror(c.Config.Mirror)
		if err != nil {
			return err
		}
		c.Mirror = m
		logger.Info("document store mirror enabled", map[string]interface{}{
			"endpoint": c.Config.Mirror.Endpoint,
			"bucket":   c.Config.Mirror.Bucket,
		})
	} else {
		c.Mirror = mirror.NewDisabled()
		logger.Info("document store mirror disabled", nil)
	}

	c.JWTManager = jwt.NewManager(c.Config.JWT.Secret, c.Config.JWT.AccessTokenExpiry)

	return nil
}

func (c *Container) initRepositories() {
	c.AuthorRepo = authorRepo.NewPostgresRepository(c.DB.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.ReviewRepo = reviewRepo.NewPostgresRepository(c.DB.Pool)
	c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.Mirror)
	c.BookService = bookService.NewBookService(c.BookRepo, c.Mirror)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.BookRepo)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)

	verifier := identity.NewGoogleVerifier(c.Config.Identity.VerifyURL, c.Config.Identity.Audience)
	c.IdentityService = identityService.NewIdentityService(verifier, c.UserRepo, c.JWTManager, "/api/v1/books")
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.IdentityHandler = identityHandler.NewIdentityHandler(c.IdentityService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
}

// Cleanup releases infrastructure resources in reverse init order.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	logger.Info("container cleaned up", nil)
}
