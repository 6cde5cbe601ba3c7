package app

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"gopkg.in/telebot.v4"

	"ketobot/internal/app/handlers/http/bot_status_handler"
	"ketobot/internal/app/handlers/http/health_handler"
	"ketobot/internal/app/handlers/http/results_count_handler"
	"ketobot/internal/app/handlers/http/results_list_handler"
	"ketobot/internal/app/handlers/http/users_count_handler"
	"ketobot/internal/app/handlers/http/users_list_handler"
	"ketobot/internal/app/handlers/telegram/admin_handler"
	"ketobot/internal/app/handlers/telegram/answer_handler"
	"ketobot/internal/app/handlers/telegram/diet_handler"
	"ketobot/internal/app/handlers/telegram/start_handler"
	"ketobot/internal/app/handlers/telegram/start_test_handler"
	"ketobot/internal/app/handlers/telegram/subscription_handler"
	"ketobot/internal/domain/broadcast"
	"ketobot/internal/domain/model"
	"ketobot/internal/domain/quiz"
	resultsRepo "ketobot/internal/domain/results/repository"
	resultsService "ketobot/internal/domain/results/service"
	"ketobot/internal/domain/state"
	usersRepo "ketobot/internal/domain/users/repository"
	usersService "ketobot/internal/domain/users/service"
	"ketobot/internal/infra/config"
	"ketobot/internal/infra/middleware"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Services struct {
	userService   *usersService.UserService
	resultService *resultsService.ResultService
	quizEngine    *quiz.Engine
	broadcasts    *broadcast.Service
}

type Handlers struct {
	start        *start_handler.StartHandler
	subscription *subscription_handler.SubscriptionHandler
	startTest    *start_test_handler.StartTestHandler
	answer       *answer_handler.AnswerHandler
	diet         *diet_handler.DietHandler
	admin        *admin_handler.AdminHandler
}

type App struct {
	config *config.Config
	logger *zap.Logger
	bot    *telebot.Bot
	db     *pgxpool.Pool
	server *http.Server

	states state.Store
	locks  *state.UserLocks

	botRunning atomic.Bool

	Services
	handlers Handlers
}

func NewApp(configPath string, logger *zap.Logger) (*App, error) {
	configImpl, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.LoadConfig: %w", err)
	}

	db, err := InitDatabase(configImpl)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	logger.Info("база данных подключена")

	states, err := initStateStore(configImpl)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize state store: %w", err)
	}

	app := &App{
		config: configImpl,
		logger: logger,
		db:     db,
		states: states,
		locks:  state.NewUserLocks(),
	}

	app.initServices()

	return app, nil
}

// initStateStore выбирает реализацию хранилища состояний по конфигурации.
func initStateStore(cfg *config.Config) (state.Store, error) {
	if cfg.State.Storage == "redis" {
		client, err := InitRedis(cfg)
		if err != nil {
			return nil, err
		}
		ttl := time.Duration(cfg.State.TTLMinutes) * time.Minute
		return state.NewRedisStore(client, ttl), nil
	}
	return state.NewMemoryStore(), nil
}

// Функция для инициализации сервисов и репозиториев
func (app *App) initServices() {
	// Инициализация репозиториев
	userRepo := usersRepo.NewUserRepository(app.db)
	resultRepo := resultsRepo.NewResultRepository(app.db)

	// Инициализация сервисов
	app.userService = usersService.NewUserService(userRepo)
	app.resultService = resultsService.NewResultService(resultRepo)
	app.quizEngine = quiz.NewEngine(app.states, app.userService, app.resultService, app.logger)
}

// ListenAndServeTelegram запускает сервер Telegram бота
func (app *App) ListenAndServeTelegram() error {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  app.config.TelegramBot.Token,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return fmt.Errorf("telebot.NewBot: %w", err)
	}
	app.bot = bot

	// Движок рассылки создается после бота: ему нужен адаптер отправки.
	app.broadcasts = broadcast.NewService(
		app.config.TelegramBot.AdminID,
		app.states,
		app.userService,
		&telegramSender{bot: bot},
		time.Duration(app.config.Broadcast.SendDelayMs)*time.Millisecond,
		app.logger,
	)

	app.bootstrapHandlersTelegram()

	app.botRunning.Store(true)
	go app.bot.Start()
	app.logger.Info("telegram-бот запущен")

	return nil
}

// bootstrapHandlersTelegram - регистрирует обработчики для бота
func (app *App) bootstrapHandlersTelegram() {
	app.handlers = Handlers{
		start: start_handler.NewStartHandler(
			app.userService, app.config.Assets.WelcomePhoto, app.config.TelegramBot.ChannelURL, app.logger),
		subscription: subscription_handler.NewSubscriptionHandler(
			app.config.TelegramBot.ChannelUsername, app.config.TelegramBot.ChannelURL, app.logger),
		startTest: start_test_handler.NewStartTestHandler(app.quizEngine, app.logger),
		answer:    answer_handler.NewAnswerHandler(app.quizEngine, app.logger),
		diet:      diet_handler.NewDietHandler(app.quizEngine, app.config.Assets.DietPDF, app.logger),
		admin:     admin_handler.NewAdminHandler(app.broadcasts, app.userService, app.resultService, app.logger),
	}

	app.bot.Use(middleware.Recover(app.logger))
	if app.config.Debug {
		app.bot.Use(middleware.Logger(app.logger))
	}

	app.bot.Handle("/start", func(c telebot.Context) error {
		unlock := app.locks.Lock(c.Sender().ID)
		defer unlock()
		return app.handlers.start.Handle(c)
	})
	app.bot.Handle("/admin", func(c telebot.Context) error {
		unlock := app.locks.Lock(c.Sender().ID)
		defer unlock()
		return app.handlers.admin.HandleCommand(c)
	})

	// Свободный текст нужен только админ-потоку рассылки,
	// остальные сообщения игнорируются внутри обработчика.
	app.bot.Handle(telebot.OnText, func(c telebot.Context) error {
		unlock := app.locks.Lock(c.Sender().ID)
		defer unlock()
		return app.handlers.admin.HandleText(c)
	})

	app.bot.Handle(telebot.OnCallback, app.dispatchCallback)
}

// dispatchCallback — единая точка входа для всех нажатий inline-кнопок.
// Callback-данные разбираются в типизированное действие на границе,
// дальше выполняется исчерпывающий выбор по виду действия.
// События одного пользователя сериализуются блокировкой по его ID.
func (app *App) dispatchCallback(c telebot.Context) error {
	action := model.ParseAction(c.Callback().Data)

	// Сразу подтверждаем callback, чтобы у пользователя не крутился спиннер.
	_ = c.Respond()

	unlock := app.locks.Lock(c.Sender().ID)
	defer unlock()

	switch action.Kind {
	case model.ActionCheckSubscription:
		return app.handlers.subscription.Handle(c)
	case model.ActionStartTest:
		return app.handlers.startTest.Handle(c)
	case model.ActionAnswer:
		return app.handlers.answer.Handle(c, action.QuestionIndex, action.OptionIndex)
	case model.ActionGetDiet:
		return app.handlers.diet.Handle(c)
	case model.ActionAdminBroadcast:
		return app.handlers.admin.BroadcastStart(c)
	case model.ActionAdminUsers:
		return app.handlers.admin.UsersList(c)
	case model.ActionAdminStats:
		return app.handlers.admin.Stats(c)
	case model.ActionAdminCancel:
		return app.handlers.admin.Cancel(c)
	case model.ActionAdminMenu:
		return app.handlers.admin.Menu(c)
	case model.ActionAdminBroadcastConfirm:
		return app.handlers.admin.Confirm(c)
	default:
		app.logger.Info("неизвестный callback-токен проигнорирован",
			zap.String("data", c.Callback().Data))
		return nil
	}
}

// ListenAndServeHTTP запускает HTTP сервер статусного API
func (app *App) ListenAndServeHTTP() error {
	isRunning := func() bool { return app.botRunning.Load() }

	mx := http.NewServeMux()

	mx.Handle("GET /api/bot/status", bot_status_handler.NewBotStatusHandler(isRunning))
	mx.Handle("GET /api/users/count", users_count_handler.NewUsersCountHandler(app.userService))
	mx.Handle("GET /api/test-results/count", results_count_handler.NewResultsCountHandler(app.resultService))
	mx.Handle("GET /api/users", users_list_handler.NewUsersListHandler(app.userService))
	mx.Handle("GET /api/test-results", results_list_handler.NewResultsListHandler(app.resultService))
	mx.Handle("GET /api/health", health_handler.NewHealthHandler(app.db, isRunning))

	app.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", app.config.Server.Host, app.config.Server.Port),
		Handler: mx,
	}

	return app.server.ListenAndServe()
}

// ListenAndServe запускает оба сервера (Telegram и HTTP)
func (app *App) ListenAndServe() error {
	// Запускаем Telegram сервер
	if err := app.ListenAndServeTelegram(); err != nil {
		return fmt.Errorf("failed to start Telegram bot: %w", err)
	}

	// Запускаем HTTP сервер
	if err := app.ListenAndServeHTTP(); err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}
