package http

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	claimservices "claimdesk/internal/application/claim/services"
	claimusecases "claimdesk/internal/application/claim/usecases"
	directoryusecases "claimdesk/internal/application/directory/usecases"
	statusservices "claimdesk/internal/application/status/services"
	statususecases "claimdesk/internal/application/status/usecases"
	"claimdesk/internal/infrastructure/auth"
	"claimdesk/internal/infrastructure/cache"
	"claimdesk/internal/infrastructure/config"
	"claimdesk/internal/infrastructure/repository"
	"claimdesk/internal/interfaces/http/handlers"
	claimhandlers "claimdesk/internal/interfaces/http/handlers/claim"
	statushandlers "claimdesk/internal/interfaces/http/handlers/status"
	"claimdesk/internal/shared/db"
	"claimdesk/internal/shared/logger"
	"claimdesk/internal/shared/services/markdown"
)

// dependencies bundles the repositories and domain services every handler
// wiring step draws from.
type dependencies struct {
	claimRepo      *repository.ClaimRepository
	statusRepo     *repository.StatusRepository
	subStatusRepo  *repository.SubStatusRepository
	transitionRepo *repository.TransitionRepository
	userDirectory  *repository.UserDirectory

	txManager    *db.TransactionManager
	markdownSvc  markdown.MarkdownService
	catalogCache statususecases.CatalogCache

	refResolver  *claimservices.StatusRefResolver
	snapshotSync *claimservices.AssigneeSnapshotSync
	recorder     *claimservices.AuditRecorder
	validator    *statusservices.TransitionValidator
}

func buildDependencies(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *dependencies {
	claimRepo := repository.NewClaimRepository(database)
	statusRepo := repository.NewStatusRepository(database)
	subStatusRepo := repository.NewSubStatusRepository(database)
	transitionRepo := repository.NewTransitionRepository(database)
	userDirectory := repository.NewUserDirectory(database)

	var catalogCache statususecases.CatalogCache
	if redisClient != nil {
		ttl := time.Duration(cfg.Claims.CatalogCacheTTLSeconds) * time.Second
		catalogCache = cache.NewStatusCatalogCache(redisClient, ttl, log)
	} else {
		catalogCache = cache.NewNoopCatalogCache()
	}

	return &dependencies{
		claimRepo:      claimRepo,
		statusRepo:     statusRepo,
		subStatusRepo:  subStatusRepo,
		transitionRepo: transitionRepo,
		userDirectory:  userDirectory,
		txManager:      db.NewTransactionManager(database),
		markdownSvc:    markdown.NewMarkdownService(),
		catalogCache:   catalogCache,
		refResolver:    claimservices.NewStatusRefResolver(statusRepo, subStatusRepo),
		snapshotSync:   claimservices.NewAssigneeSnapshotSync(userDirectory, log),
		recorder:       claimservices.NewAuditRecorder(log),
		validator:      statusservices.NewTransitionValidator(transitionRepo),
	}
}

func buildAuthHandler(deps *dependencies, jwtSvc *auth.JWTService, cfg *config.Config, log logger.Interface) *handlers.AuthHandler {
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	issuer := &tokenIssuerAdapter{jwt: jwtSvc}

	loginUC := directoryusecases.NewLoginUseCase(deps.userDirectory, hasher, issuer, log)

	return handlers.NewAuthHandler(loginUC)
}

func buildClaimHandler(deps *dependencies, cfg *config.Config, log logger.Interface) *claimhandlers.ClaimHandler {
	auditComments := cfg.Claims.AuditComments

	createUC := claimusecases.NewCreateClaimUseCase(
		deps.claimRepo, deps.refResolver, deps.snapshotSync, deps.recorder, log)
	updateUC := claimusecases.NewUpdateClaimUseCase(
		deps.claimRepo, deps.statusRepo, deps.subStatusRepo,
		deps.refResolver, deps.validator, deps.snapshotSync, deps.recorder, log)
	assignUC := claimusecases.NewAssignClaimUseCase(
		deps.claimRepo, deps.statusRepo, deps.subStatusRepo,
		deps.snapshotSync, deps.recorder, log)
	deleteUC := claimusecases.NewDeleteClaimUseCase(
		deps.claimRepo, deps.recorder, deps.txManager, log)
	getUC := claimusecases.NewGetClaimUseCase(
		deps.claimRepo, deps.statusRepo, deps.subStatusRepo,
		deps.snapshotSync, deps.markdownSvc, log)
	listUC := claimusecases.NewListClaimsUseCase(
		deps.claimRepo, deps.statusRepo, deps.subStatusRepo,
		deps.userDirectory, deps.refResolver, log)
	addCommentUC := claimusecases.NewAddCommentUseCase(
		deps.claimRepo, deps.markdownSvc, deps.recorder, log, auditComments)
	editCommentUC := claimusecases.NewEditCommentUseCase(
		deps.claimRepo, deps.markdownSvc, log)
	deleteCommentUC := claimusecases.NewDeleteCommentUseCase(deps.claimRepo, log)
	addAttachmentUC := claimusecases.NewAddAttachmentUseCase(
		deps.claimRepo, deps.recorder, log, auditComments)
	deleteAttachmentUC := claimusecases.NewDeleteAttachmentUseCase(deps.claimRepo, log)
	listAuditUC := claimusecases.NewListAuditEventsUseCase(deps.claimRepo, log)

	return claimhandlers.NewClaimHandler(
		createUC, updateUC, assignUC, deleteUC, getUC, listUC,
		addCommentUC, editCommentUC, deleteCommentUC,
		addAttachmentUC, deleteAttachmentUC, listAuditUC,
	)
}

func buildStatusHandler(deps *dependencies, log logger.Interface) *statushandlers.StatusHandler {
	createStatusUC := statususecases.NewCreateStatusUseCase(
		deps.statusRepo, deps.catalogCache, log)
	updateStatusUC := statususecases.NewUpdateStatusUseCase(
		deps.statusRepo, deps.subStatusRepo, deps.catalogCache, log)
	deleteStatusUC := statususecases.NewDeleteStatusUseCase(
		deps.statusRepo, deps.subStatusRepo, deps.transitionRepo,
		deps.claimRepo, deps.txManager, deps.catalogCache, log)
	getStatusUC := statususecases.NewGetStatusUseCase(
		deps.statusRepo, deps.subStatusRepo, log)
	listStatusesUC := statususecases.NewListStatusesUseCase(
		deps.statusRepo, deps.subStatusRepo, deps.catalogCache, log)
	createSubStatusUC := statususecases.NewCreateSubStatusUseCase(
		deps.statusRepo, deps.subStatusRepo, deps.catalogCache, log)
	updateSubStatusUC := statususecases.NewUpdateSubStatusUseCase(
		deps.subStatusRepo, deps.catalogCache, log)
	deleteSubStatusUC := statususecases.NewDeleteSubStatusUseCase(
		deps.subStatusRepo, deps.claimRepo, deps.catalogCache, log)
	listSubStatusesUC := statususecases.NewListSubStatusesUseCase(
		deps.statusRepo, deps.subStatusRepo, log)
	createTransitionUC := statususecases.NewCreateTransitionUseCase(
		deps.statusRepo, deps.transitionRepo, deps.catalogCache, log)
	updateTransitionUC := statususecases.NewUpdateTransitionUseCase(
		deps.transitionRepo, deps.catalogCache, log)
	deleteTransitionUC := statususecases.NewDeleteTransitionUseCase(
		deps.transitionRepo, deps.catalogCache, log)
	listTransitionsUC := statususecases.NewListTransitionsUseCase(
		deps.transitionRepo, log)
	validateTransitionUC := statususecases.NewValidateTransitionUseCase(
		deps.validator, log)

	return statushandlers.NewStatusHandler(
		createStatusUC, updateStatusUC, deleteStatusUC, getStatusUC, listStatusesUC,
		createSubStatusUC, updateSubStatusUC, deleteSubStatusUC, listSubStatusesUC,
		createTransitionUC, updateTransitionUC, deleteTransitionUC,
		listTransitionsUC, validateTransitionUC,
	)
}
