package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/creatorlift/dashboard-client/infrastructure/gateway/analytics"
	"github.com/creatorlift/dashboard-client/infrastructure/gateway/campaign"
	"github.com/creatorlift/dashboard-client/infrastructure/gateway/httpclient"
	"github.com/creatorlift/dashboard-client/infrastructure/gateway/integration"
	"github.com/creatorlift/dashboard-client/infrastructure/gateway/payment"
	"github.com/creatorlift/dashboard-client/infrastructure/gateway/shared"
	"github.com/creatorlift/dashboard-client/infrastructure/gateway/user"
	"github.com/creatorlift/dashboard-client/internal/auth"
	"github.com/creatorlift/dashboard-client/internal/config"
	"github.com/creatorlift/dashboard-client/internal/domain"
	"github.com/creatorlift/dashboard-client/internal/stores"
	"github.com/creatorlift/dashboard-client/pkg/log"
	"github.com/creatorlift/dashboard-client/pkg/querycache"
	"github.com/creatorlift/dashboard-client/pkg/utils"
)

// App concentra as dependências montadas na inicialização e compartilhadas
// pelos comandos
type App struct {
	cfg         *config.Config
	identity    domain.Claims
	cache       *querycache.Cache
	campaigns   campaign.Client
	analytics   analytics.Client
	payments    payment.Client
	integration integration.Client
	shared      shared.Client
	users       user.Client
}

// context cria o contexto raiz de um comando com ID de correlação
func (a *App) context() context.Context {
	ctx, _ := log.WithCorrelationID(context.Background())
	return ctx
}

type OverviewCmd struct{}

// Run monta o dashboard do criador: campanhas aceitas, KPIs e notificações
func (cmd *OverviewCmd) Run(app *App) error {
	ctx := app.context()

	accepted := stores.NewAcceptedCampaignsStore(app.campaigns)
	accepted.Refetch(ctx)

	performance := stores.NewPerformanceStore(app.analytics, app.identity.UserID)
	performance.Refetch(ctx)

	notifications := stores.NewNotificationsStore(app.shared)
	notifications.Refetch(ctx)

	fmt.Println(utils.PrettyJson(map[string]any{
		"accepted_campaigns": accepted.Snapshot(),
		"performance":        performance.Snapshot(),
		"notifications":      notifications.Snapshot(),
	}))

	return nil
}

type CampaignsCmd struct {
	Since string `help:"Mostra só campanhas iniciadas a partir da data (yyyy-mm-dd)." optional:""`
}

func (cmd *CampaignsCmd) Run(app *App) error {
	store := stores.NewCampaignsStore(app.campaigns, app.cache)
	store.Refetch(app.context())

	snapshot := store.Snapshot()

	if cmd.Since != "" {
		since, err := utils.ParseDate(cmd.Since)
		if err != nil {
			return err
		}

		filtered := snapshot.Campaigns[:0]
		for _, c := range snapshot.Campaigns {
			if c.StartDate != nil && !c.StartDate.Before(*since) {
				filtered = append(filtered, c)
			}
		}
		snapshot.Campaigns = filtered
	}

	fmt.Println(utils.PrettyJson(snapshot))
	return nil
}

type BrandsCmd struct{}

func (cmd *BrandsCmd) Run(app *App) error {
	store := stores.NewBrandsStore(app.campaigns, app.cache)
	store.Refetch(app.context())

	fmt.Println(utils.PrettyJson(store.Snapshot()))
	return nil
}

type ApplicationsCmd struct {
	Apply string `help:"ID da campanha para registrar uma candidatura." optional:""`
	Note  string `help:"Mensagem enviada junto com a candidatura." optional:""`
}

func (cmd *ApplicationsCmd) Run(app *App) error {
	ctx := app.context()

	store := stores.NewApplicationsStore(app.campaigns)
	store.Refetch(ctx)

	if cmd.Apply != "" {
		result := store.Apply(ctx, cmd.Apply, cmd.Note)
		fmt.Println(utils.PrettyJson(result))
	}

	fmt.Println(utils.PrettyJson(store.Snapshot()))
	return nil
}

type LeaderboardCmd struct {
	Period string `help:"Período do ranking (week, month, all)." default:"month"`
}

func (cmd *LeaderboardCmd) Run(app *App) error {
	store := stores.NewLeaderboardStore(app.analytics, app.cache, cmd.Period, app.identity)
	store.Refetch(app.context())

	fmt.Println(utils.PrettyJson(store.Snapshot()))
	return nil
}

type PerformanceCmd struct {
	CreatorID string `help:"ID do criador. Por padrão usa a identidade do token." optional:""`
}

func (cmd *PerformanceCmd) Run(app *App) error {
	creatorID := cmd.CreatorID
	if creatorID == "" {
		creatorID = app.identity.UserID
	}

	store := stores.NewPerformanceStore(app.analytics, creatorID)
	store.Refetch(app.context())

	fmt.Println(utils.PrettyJson(store.Snapshot()))
	return nil
}

type PaymentsCmd struct {
	SetDefault string `help:"Marca o meio de pagamento informado como padrão." optional:""`
	Delete     string `help:"Remove o meio de pagamento informado." optional:""`
}

func (cmd *PaymentsCmd) Run(app *App) error {
	ctx := app.context()

	store := stores.NewPaymentsStore(app.payments)
	store.Refetch(ctx)

	if cmd.SetDefault != "" {
		fmt.Println(utils.PrettyJson(store.SetDefault(ctx, cmd.SetDefault)))
	}
	if cmd.Delete != "" {
		fmt.Println(utils.PrettyJson(store.Delete(ctx, cmd.Delete)))
	}

	fmt.Println(utils.PrettyJson(store.Snapshot()))
	return nil
}

type IntegrationsCmd struct {
	Connect    string `help:"Conecta a integração informada." optional:""`
	Disconnect string `help:"Desconecta a integração informada." optional:""`
}

func (cmd *IntegrationsCmd) Run(app *App) error {
	ctx := app.context()

	store := stores.NewIntegrationsStore(app.integration)
	store.Refetch(ctx)

	if cmd.Connect != "" {
		fmt.Println(utils.PrettyJson(store.Connect(ctx, cmd.Connect)))
	}
	if cmd.Disconnect != "" {
		fmt.Println(utils.PrettyJson(store.Disconnect(ctx, cmd.Disconnect)))
	}

	fmt.Println(utils.PrettyJson(store.Snapshot()))
	return nil
}

type NotificationsCmd struct {
	MarkRead    string `help:"Marca a notificação informada como lida." optional:""`
	MarkAllRead bool   `help:"Marca todas as notificações como lidas." optional:""`
}

func (cmd *NotificationsCmd) Run(app *App) error {
	ctx := app.context()

	store := stores.NewNotificationsStore(app.shared)
	store.Refetch(ctx)

	if cmd.MarkRead != "" {
		fmt.Println(utils.PrettyJson(store.MarkRead(ctx, cmd.MarkRead)))
	}
	if cmd.MarkAllRead {
		fmt.Println(utils.PrettyJson(store.MarkAllRead(ctx)))
	}

	fmt.Println(utils.PrettyJson(store.Snapshot()))
	return nil
}

type SettingsGetCmd struct{}

func (cmd *SettingsGetCmd) Run(app *App) error {
	store := stores.NewSettingsStore(app.users, app.identity)
	store.Refetch(app.context())

	fmt.Println(utils.PrettyJson(store.Snapshot()))
	return nil
}

type SettingsSetCmd struct {
	Timezone string `help:"Fuso horário regional." optional:""`
	Currency string `help:"Moeda de exibição." optional:""`
	Language string `help:"Idioma da interface." optional:""`
}

// Run aplica um patch regional sobre as configurações atuais
func (cmd *SettingsSetCmd) Run(app *App) error {
	ctx := app.context()

	store := stores.NewSettingsStore(app.users, app.identity)
	store.Refetch(ctx)

	current := store.Snapshot().Settings.Regional
	if cmd.Timezone != "" {
		current.Timezone = cmd.Timezone
	}
	if cmd.Currency != "" {
		current.Currency = cmd.Currency
	}
	if cmd.Language != "" {
		current.Language = cmd.Language
	}

	result := store.SaveSettings(ctx, domain.SettingsUpdate{Regional: &current})
	fmt.Println(utils.PrettyJson(result))
	fmt.Println(utils.PrettyJson(store.Snapshot()))
	return nil
}

type SettingsCmd struct {
	Get SettingsGetCmd `cmd:"" help:"Mostra as configurações da agência."`
	Set SettingsSetCmd `cmd:"" help:"Atualiza as configurações regionais da agência."`
}

type UploadCmd struct {
	Path    string `arg:"" help:"Caminho do arquivo a enviar."`
	Purpose string `help:"Finalidade do arquivo (brand_logo, campaign_asset, ...)." default:"campaign_asset"`
}

func (cmd *UploadCmd) Run(app *App) error {
	file, err := os.Open(cmd.Path)
	if err != nil {
		return err
	}
	defer file.Close()

	store := stores.NewUploadsStore(app.shared)
	result := store.Upload(app.context(), filepath.Base(cmd.Path), file, cmd.Purpose)

	fmt.Println(utils.PrettyJson(result))
	fmt.Println(utils.PrettyJson(store.Snapshot()))
	return nil
}

type CLI struct {
	Overview      OverviewCmd      `cmd:"" help:"Dashboard do criador: campanhas aceitas, KPIs e notificações."`
	Campaigns     CampaignsCmd     `cmd:"" help:"Lista as campanhas da agência."`
	Brands        BrandsCmd        `cmd:"" help:"Lista as marcas vinculadas à agência."`
	Applications  ApplicationsCmd  `cmd:"" help:"Lista candidaturas e registra novas."`
	Leaderboard   LeaderboardCmd   `cmd:"" help:"Ranking de criadores por GMV."`
	Performance   PerformanceCmd   `cmd:"" help:"KPIs de performance de um criador."`
	Payments      PaymentsCmd      `cmd:"" help:"Meios de pagamento cadastrados."`
	Integrations  IntegrationsCmd  `cmd:"" help:"Integrações externas da agência."`
	Notifications NotificationsCmd `cmd:"" help:"Notificações do usuário autenticado."`
	Settings      SettingsCmd      `cmd:"" help:"Configurações da agência."`
	Upload        UploadCmd        `cmd:"" help:"Envia um arquivo para o serviço compartilhado."`
}

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	tokens := auth.NewStaticTokenSource(cfg.Auth.BearerToken)
	identity := auth.CurrentUser(tokens)

	cache := querycache.New(querycache.Config{
		ListTTL:     time.Duration(cfg.QueryCache.ListTTLMinutes) * time.Minute,
		DetailTTL:   time.Duration(cfg.QueryCache.DetailTTLMinutes) * time.Minute,
		JanitorCron: cfg.QueryCache.JanitorCron,
		Enabled:     cfg.QueryCache.Enabled,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	janitor := querycache.NewJanitor(cache)
	if err := janitor.Start(ctx); err != nil {
		logrus.WithError(err).Warn("Erro ao iniciar o janitor do cache de consultas")
	}

	timeout := cfg.Services.RequestTimeout()
	app := &App{
		cfg:         cfg,
		identity:    identity,
		cache:       cache,
		campaigns:   campaign.NewClient(httpclient.New("campaign", cfg.Services.CampaignURL, timeout, tokens)),
		analytics:   analytics.NewClient(httpclient.New("analytics", cfg.Services.AnalyticsURL, timeout, tokens)),
		payments:    payment.NewClient(httpclient.New("payment", cfg.Services.PaymentURL, timeout, tokens)),
		integration: integration.NewClient(httpclient.New("integration", cfg.Services.IntegrationURL, timeout, tokens)),
		shared:      shared.NewClient(httpclient.New("shared", cfg.Services.SharedURL, timeout, tokens)),
		users:       user.NewClient(httpclient.New("user", cfg.Services.UserURL, timeout, tokens)),
	}

	cli := CLI{}
	cntx := kong.Parse(&cli,
		kong.Description("Cliente de dados do dashboard CreatorLift"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	err = cntx.Run(app)
	cntx.FatalIfErrorf(err)
}

// configureLogger configura o formato dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
