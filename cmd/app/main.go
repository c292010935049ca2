package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"restaurant/cmd"
	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/events"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/core/ports"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	migrateOnStart bool

	newUserEmail    string
	newUserPassword string
	newUserRole     string
)

var rootCmd = &cobra.Command{
	Use:           "restaurant",
	Short:         "Restaurant order management service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and background jobs",
	RunE:  serve,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE:  migrate,
}

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Register a back-office account",
	RunE:  createUser,
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Migrate the schema before serving")

	createUserCmd.Flags().StringVar(&newUserEmail, "email", "", "Account email")
	createUserCmd.Flags().StringVar(&newUserPassword, "password", "", "Account password (or set ORDERS_NEW_USER_PASSWORD)")
	createUserCmd.Flags().StringVar(&newUserRole, "role", string(user.Staff), "ADMIN or STAFF")
	_ = createUserCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(serveCmd, migrateCmd, createUserCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// bootstrap loads the config, builds the logger and connects to the database.
func bootstrap(ctx context.Context) (cmd.Config, *zap.Logger, *gorm.DB, error) {
	config, err := cmd.LoadConfig()
	if err != nil {
		return cmd.Config{}, nil, nil, err
	}

	logger, err := cmd.NewLogger(config.LogLevel)
	if err != nil {
		return cmd.Config{}, nil, nil, err
	}

	if config.DB.DSN == "" {
		return cmd.Config{}, nil, nil, errors.New("database DSN is required: set ORDERS_DB_DSN or DATABASE_URL")
	}

	db, err := postgres.Open(ctx, config.DB.DSN, postgres.PoolConfig{
		MaxOpenConns:    config.DB.MaxOpenConns,
		MaxIdleConns:    config.DB.MaxIdleConns,
		ConnMaxLifetime: config.DB.ConnMaxLifetime,
	}, config.DB.DebugSQL)
	if err != nil {
		return cmd.Config{}, nil, nil, err
	}

	return config, logger, db, nil
}

func closeDB(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err = sqlDB.Close(); err != nil {
		logger.Warn("failed to close database", zap.Error(err))
	}
}

func serve(c *cobra.Command, _ []string) error {
	ctx := c.Context()

	config, logger, db, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	defer closeDB(db, logger)

	if err = config.Validate(); err != nil {
		return err
	}

	if migrateOnStart {
		if err = postgres.Migrate(ctx, db); err != nil {
			return err
		}
		logger.Info("schema migrated")
	}

	publisher, closePublisher, err := newPublisher(config, logger)
	if err != nil {
		return err
	}
	defer closePublisher()

	app, err := cmd.NewCompositionRoot(config, db, publisher, logger)
	if err != nil {
		return err
	}

	router, err := httpadapter.NewRouter(app.CreateHTTPServer(), app.SessionParser(), logger)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	server := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", config.HTTP.Port),
		Handler:      router,
		ReadTimeout:  config.HTTP.ReadTimeout,
		WriteTimeout: config.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", server.Addr))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.HTTP.ShutdownTimeout)
	defer cancel()

	if err = server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// newPublisher connects to the broker when one is configured.
func newPublisher(config cmd.Config, logger *zap.Logger) (ports.OrderEventPublisher, func(), error) {
	if config.AMQP.URL == "" {
		logger.Info("amqp url not set, order events are not published")
		return events.NopPublisher{}, func() {}, nil
	}

	conn, err := events.Dial(config.AMQP.URL, config.AMQP.Exchange)
	if err != nil {
		return nil, nil, err
	}

	publisher, err := events.NewAMQPPublisher(conn.Channel(), config.AMQP.Exchange, logger)
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	return publisher, func() {
		if err := conn.Close(); err != nil {
			logger.Warn("failed to close amqp connection", zap.Error(err))
		}
	}, nil
}

func migrate(c *cobra.Command, _ []string) error {
	ctx := c.Context()

	_, logger, db, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	defer closeDB(db, logger)

	if err = postgres.Migrate(ctx, db); err != nil {
		return err
	}
	logger.Info("schema migrated")
	return nil
}

func createUser(c *cobra.Command, _ []string) error {
	ctx := c.Context()

	if newUserPassword == "" {
		newUserPassword = os.Getenv("ORDERS_NEW_USER_PASSWORD")
	}

	_, logger, db, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	defer closeDB(db, logger)

	id := kernel.NewUUID()
	command, err := commands.NewCreateUserCommand(id, newUserEmail, newUserPassword, user.Role(newUserRole))
	if err != nil {
		return err
	}

	uowFactory := postgres.NewGormUnitOfWorkFactory(db)
	handler := commands.NewCreateUserCommandHandler(cmd.FuncUserUoWFactory(func() commands.UserUoW {
		return uowFactory.Create()
	}))
	if err = handler.Handle(ctx, command); err != nil {
		return err
	}

	logger.Info("user created",
		zap.String("userId", id.String()),
		zap.String("email", user.NormalizeEmail(newUserEmail)),
		zap.String("role", newUserRole),
	)
	return nil
}
