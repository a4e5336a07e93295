package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"inkwell"
	"inkwell/config"
	"inkwell/internal/application/usecase"
	"inkwell/internal/domain/document"
	"inkwell/internal/infrastructure/broker"
	"inkwell/internal/infrastructure/database"
	"inkwell/internal/infrastructure/minio"
	"inkwell/internal/presentation/handler"
	"inkwell/pkg/logger"
	"inkwell/pkg/tasks"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("config path expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running inkwell", "version", inkwell.StringVersion())

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}

	publisher := broker.NewPublisher(brokerClient, cfg.PublisherConfig)

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	writer := database.NewMediaWriter(db)
	retriever := database.NewMediaRetriever(db)
	remover := database.NewMediaRemover(db)
	renamer := database.NewMediaRenamer(db)
	lister := database.NewMediaLister(db)
	postIndex := database.NewPostIndexRepository(db)

	minIOClient, err := minio.New(&cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}
	blobUploader := minio.NewUploader(minIOClient.MinioClient, &cfg.MinIOUploader)
	blobRemover := minio.NewRemover(minIOClient.MinioClient, &cfg.MinIORemover)

	runner := tasks.NewRunner(time.Duration(cfg.Tasks.Timeout) * time.Millisecond)
	scanner := document.NewScanner(cfg.Default.PublicAddress)

	uploadHandler := handler.NewUploadHandler(
		usecase.NewUploader(publisher, writer, blobUploader, blobRemover, runner))
	deleteHandler := handler.NewDeleteHandler(
		usecase.NewDeleter(publisher, retriever, remover, blobRemover, runner))
	renameHandler := handler.NewRenameHandler(usecase.NewRenamer(retriever, renamer))
	getHandler := handler.NewGetHandler(usecase.NewGetter(retriever))
	listHandler := handler.NewListHandler(usecase.NewLister(lister))
	usageHandler := handler.NewUsageHandler(usecase.NewLinker(scanner, postIndex))

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodPatch, http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit("50M"))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	e.POST("/media", uploadHandler.Handle)
	e.GET("/media", listHandler.HandleList)
	e.GET("/media/size", listHandler.HandleTotalSize)
	e.POST("/media/linked", usageHandler.HandleLinkedKeys)
	e.GET("/media/:key", getHandler.HandleGet)
	e.DELETE("/media/:key", deleteHandler.HandleDelete)
	e.PATCH("/media/:key/name", renameHandler.HandleRename)
	e.GET("/media/:key/usage", usageHandler.HandleInUse)
	e.GET("/media/:key/posts", usageHandler.HandleLinkedPosts)
	e.PUT("/posts/:id/media-index", usageHandler.HandleIndexPost)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}

	// Pending compensating deletes must finish before the process quiesces.
	runner.Wait()

	if err := db.Stop(); err != nil {
		ExitOnError(err)
	}
	if err := brokerClient.Close(); err != nil {
		ExitOnError(err)
	}
}
