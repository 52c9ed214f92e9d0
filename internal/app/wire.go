//go:build wireinject
// +build wireinject

package app

import (
	"fleetservice/internal/handlers/rest/assignment_post"
	"fleetservice/internal/handlers/rest/assignments_get"
	"fleetservice/internal/handlers/rest/fuellog_lastkm_get"
	"fleetservice/internal/handlers/rest/fuellog_post"
	"fleetservice/internal/handlers/rest/fuellogs_get"
	"fleetservice/internal/handlers/rest/login_post"
	"fleetservice/internal/handlers/rest/maintenance_interval_put"
	"fleetservice/internal/handlers/rest/maintenance_service_post"
	"fleetservice/internal/handlers/rest/maintenance_units_get"
	"fleetservice/internal/handlers/rest/operator_delete"
	"fleetservice/internal/handlers/rest/operator_post"
	"fleetservice/internal/handlers/rest/operator_put"
	"fleetservice/internal/handlers/rest/operators_get"
	"fleetservice/internal/handlers/rest/override_issue_post"
	"fleetservice/internal/handlers/rest/override_redeem_post"
	"fleetservice/internal/handlers/rest/unit_delete"
	"fleetservice/internal/handlers/rest/unit_get"
	"fleetservice/internal/handlers/rest/unit_post"
	"fleetservice/internal/handlers/rest/unit_put"
	"fleetservice/internal/handlers/rest/units_get"
	"fleetservice/internal/handlers/rest/user_post"
	"fleetservice/internal/pkg/config"
	"fleetservice/internal/pkg/factory/override_code"
	"fleetservice/internal/pkg/factory/token_expiry"

	companyRepo "fleetservice/internal/repository/company"
	fuellogRepo "fleetservice/internal/repository/fuellog"
	maintenanceRepo "fleetservice/internal/repository/maintenance"
	operatorRepo "fleetservice/internal/repository/operator"
	overrideRepo "fleetservice/internal/repository/override"
	unitRepo "fleetservice/internal/repository/unit"
	userRepo "fleetservice/internal/repository/user"

	assignmentService "fleetservice/internal/service/assignment"
	authService "fleetservice/internal/service/auth"
	complianceService "fleetservice/internal/service/compliance"
	fuellogService "fleetservice/internal/service/fuellog"
	maintenanceService "fleetservice/internal/service/maintenance"
	operatorService "fleetservice/internal/service/operator"
	overrideService "fleetservice/internal/service/override"
	unitService "fleetservice/internal/service/unit"

	"fleetservice/pkg/querier"
	"fleetservice/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	ServiceUnit        ServiceUnit
	ServiceCompliance  ServiceCompliance
	ServiceOperator    ServiceOperator
	ServiceAssignment  ServiceAssignment
	ServiceOverride    ServiceOverride
	ServiceMaintenance ServiceMaintenance
	ServiceFuelLog     ServiceFuelLog
	ServiceAuth        ServiceAuth
}

type ServiceUnit interface {
	units_get.Service
	unit_post.Service
	unit_put.Service
	unit_delete.Service
	maintenance_interval_put.Service
	maintenance_units_get.Service
}

type ServiceCompliance interface {
	unit_get.Service
}

type ServiceOperator interface {
	operators_get.Service
	operator_post.Service
	operator_put.Service
	operator_delete.Service
}

type ServiceAssignment interface {
	assignments_get.Service
	assignment_post.Service
}

type ServiceOverride interface {
	override_issue_post.Service
	override_redeem_post.Service
}

type ServiceMaintenance interface {
	maintenance_service_post.Service
}

type ServiceFuelLog interface {
	fuellog_post.Service
	fuellogs_get.Service
	fuellog_lastkm_get.Service
}

type ServiceAuth interface {
	login_post.Service
	user_post.Service
	VerifyToken(tokenString string) (*authService.Claims, error)
}

// InitializeApplication wires the HTTP service (cmd/service).
func InitializeApplication(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideUnitRepository,
		provideOperatorRepository,
		provideCompanyRepository,
		provideFuelLogRepository,
		provideOverrideRepository,
		provideMaintenanceRepository,
		provideUserRepository,

		provideServiceUnit,
		provideServiceCompliance,
		provideServiceOperator,
		provideServiceAssignment,
		provideServiceOverride,
		provideServiceMaintenance,
		provideServiceFuelLog,
		provideServiceAuth,

		provideTokenExpiryFactory,
		override_code.New,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceUnit), new(*unitService.Unit)),
		wire.Bind(new(ServiceCompliance), new(*complianceService.Compliance)),
		wire.Bind(new(ServiceOperator), new(*operatorService.Operator)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Assignment)),
		wire.Bind(new(ServiceOverride), new(*overrideService.Override)),
		wire.Bind(new(ServiceMaintenance), new(*maintenanceService.Maintenance)),
		wire.Bind(new(ServiceFuelLog), new(*fuellogService.FuelLog)),
		wire.Bind(new(ServiceAuth), new(*authService.Auth)),

		wire.Bind(new(unitService.Repository), new(*unitRepo.Repository)),
		wire.Bind(new(unitService.CompanyRepository), new(*companyRepo.Repository)),
		wire.Bind(new(complianceService.UnitRepository), new(*unitRepo.Repository)),
		wire.Bind(new(complianceService.FuelLogRepository), new(*fuellogRepo.Repository)),
		wire.Bind(new(operatorService.Repository), new(*operatorRepo.Repository)),
		wire.Bind(new(operatorService.CompanyRepository), new(*companyRepo.Repository)),
		wire.Bind(new(assignmentService.Repository), new(*unitRepo.Repository)),
		wire.Bind(new(overrideService.Repository), new(*overrideRepo.Repository)),
		wire.Bind(new(overrideService.UnitRepository), new(*unitRepo.Repository)),
		wire.Bind(new(overrideService.TokenExpiryFactory), new(*token_expiry.TokenExpiryFactory)),
		wire.Bind(new(overrideService.CodeGenerator), new(*override_code.CodeFactory)),
		wire.Bind(new(maintenanceService.Repository), new(*maintenanceRepo.Repository)),
		wire.Bind(new(maintenanceService.UnitRepository), new(*unitRepo.Repository)),
		wire.Bind(new(fuellogService.Repository), new(*fuellogRepo.Repository)),
		wire.Bind(new(fuellogService.CompanyRepository), new(*companyRepo.Repository)),
		wire.Bind(new(fuellogService.UnitRepository), new(*unitRepo.Repository)),
		wire.Bind(new(fuellogService.OperatorRepository), new(*operatorRepo.Repository)),
		wire.Bind(new(authService.Repository), new(*userRepo.Repository)),

		wire.Bind(new(unitService.TxManager), new(*tx.Manager)),
		wire.Bind(new(complianceService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(operatorService.TxManager), new(*tx.Manager)),
		wire.Bind(new(maintenanceService.TxManager), new(*tx.Manager)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideUnitRepository(querier *querier.Querier) *unitRepo.Repository {
	return unitRepo.New(querier)
}

func provideOperatorRepository(querier *querier.Querier) *operatorRepo.Repository {
	return operatorRepo.New(querier)
}

func provideCompanyRepository(querier *querier.Querier) *companyRepo.Repository {
	return companyRepo.New(querier)
}

func provideFuelLogRepository(querier *querier.Querier) *fuellogRepo.Repository {
	return fuellogRepo.New(querier)
}

func provideOverrideRepository(querier *querier.Querier) *overrideRepo.Repository {
	return overrideRepo.New(querier)
}

func provideMaintenanceRepository(querier *querier.Querier) *maintenanceRepo.Repository {
	return maintenanceRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideServiceUnit(
	repository unitService.Repository,
	companyRepository unitService.CompanyRepository,
	txManager unitService.TxManager,
) *unitService.Unit {
	return unitService.New(repository, companyRepository, txManager)
}

func provideServiceCompliance(
	unitRepository complianceService.UnitRepository,
	fuelLogRepository complianceService.FuelLogRepository,
	txManager complianceService.TxManager,
) *complianceService.Compliance {
	return complianceService.New(unitRepository, fuelLogRepository, txManager)
}

func provideServiceOperator(
	repository operatorService.Repository,
	companyRepository operatorService.CompanyRepository,
	txManager operatorService.TxManager,
) *operatorService.Operator {
	return operatorService.New(repository, companyRepository, txManager)
}

func provideServiceAssignment(
	repository assignmentService.Repository,
	txManager assignmentService.TxManager,
) *assignmentService.Assignment {
	return assignmentService.New(repository, txManager)
}

func provideServiceOverride(
	repository overrideService.Repository,
	unitRepository overrideService.UnitRepository,
	expiryFactory overrideService.TokenExpiryFactory,
	codeGenerator overrideService.CodeGenerator,
) *overrideService.Override {
	return overrideService.New(repository, unitRepository, expiryFactory, codeGenerator)
}

func provideServiceMaintenance(
	repository maintenanceService.Repository,
	unitRepository maintenanceService.UnitRepository,
	txManager maintenanceService.TxManager,
) *maintenanceService.Maintenance {
	return maintenanceService.New(repository, unitRepository, txManager)
}

func provideServiceFuelLog(
	repository fuellogService.Repository,
	companyRepository fuellogService.CompanyRepository,
	unitRepository fuellogService.UnitRepository,
	operatorRepository fuellogService.OperatorRepository,
) *fuellogService.FuelLog {
	return fuellogService.New(repository, companyRepository, unitRepository, operatorRepository)
}

func provideServiceAuth(repository authService.Repository, cfg *config.Config) *authService.Auth {
	return authService.New(repository, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.BcryptCost)
}

func provideTokenExpiryFactory(cfg *config.Config) *token_expiry.TokenExpiryFactory {
	return token_expiry.New(cfg.Override.TokenTTL)
}
