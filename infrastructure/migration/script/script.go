package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-sync-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-sync-api/infrastructure/repository"
	"github.com/vfg2006/ad-sync-api/internal/config"
	"github.com/vfg2006/ad-sync-api/internal/domain"
	"github.com/vfg2006/ad-sync-api/internal/usecases/authenticating"
)

// seedOptions descreve a conta de anúncios conectada na carga inicial
type seedOptions struct {
	UserID            string
	UserEmail         string
	PlatformAccountID string
	Name              string
	AccessToken       string
	TokenExpiresIn    time.Duration
}

func parseFlags() seedOptions {
	opts := seedOptions{}

	flag.StringVar(&opts.UserID, "user", "", "id do usuário dono da conta")
	flag.StringVar(&opts.UserEmail, "email", "", "email do usuário (apenas no token emitido)")
	flag.StringVar(&opts.PlatformAccountID, "account", "", "id da conta de anúncios no Meta (sem act_)")
	flag.StringVar(&opts.Name, "name", "", "nome da conta de anúncios")
	flag.StringVar(&opts.AccessToken, "token", "", "access token do Meta")
	flag.DurationVar(&opts.TokenExpiresIn, "token-expires-in", 60*24*time.Hour, "validade do access token")
	flag.Parse()

	return opts
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	opts := parseFlags()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	startTime := time.Now()
	if err := postgres.EnsureSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("ERRO ao aplicar schema")
	}
	logrus.Infof("Schema aplicado em %v", time.Since(startTime))

	if opts.UserID == "" || opts.PlatformAccountID == "" || opts.AccessToken == "" {
		logrus.Info("Nenhuma conta informada (-user, -account, -token), carga inicial ignorada")
		return
	}

	if err := seedAccount(ctx, repository.NewAccountRepository(conn), opts); err != nil {
		logrus.WithError(err).Fatal("ERRO ao registrar conta de anúncios")
	}

	token, err := authenticating.NewService(cfg.Auth).GenerateToken(opts.UserID, opts.UserEmail, authenticating.DefaultTokenTTL)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao emitir token do usuário")
	}

	logrus.WithField("expires_in", authenticating.DefaultTokenTTL.String()).Infof("Token para POST /v1/sync/chunk: %s", token)
}

func seedAccount(ctx context.Context, repo repository.AccountRepository, opts seedOptions) error {
	expiresAt := metaclient.CalculateTokenExpiration(time.Now(), int64(opts.TokenExpiresIn.Seconds()))

	account := &domain.AdAccount{
		UserID:            opts.UserID,
		Platform:          domain.PlatformFacebook,
		PlatformAccountID: opts.PlatformAccountID,
		Name:              opts.Name,
		AccessToken:       opts.AccessToken,
		TokenExpiresAt:    &expiresAt,
		Status:            domain.AdAccountStatusActive,
	}

	id, err := repo.SaveOrUpdate(ctx, account)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"account_id":          id,
		"platform_account_id": opts.PlatformAccountID,
		"token_expires_at":    expiresAt.Format(time.RFC3339),
	}).Info("Conta de anúncios registrada com sucesso")

	return nil
}
