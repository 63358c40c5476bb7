package handler

import (
	"net/http"

	"github.com/vfg2006/painel-leads-api/internal/api/handler/router"
	"github.com/vfg2006/painel-leads-api/internal/domain"
	"github.com/vfg2006/painel-leads-api/internal/usecases/ranking"
)

func Healthcheck(store StoreStatus) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(store),
		},
	}
}

func Leads(board Board) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/leads",
			Method:  http.MethodGet,
			Handler: ListLeadCollection(board, domain.CollectionLeads),
		},
		{
			Path:    "/v1/leads",
			Method:  http.MethodPost,
			Handler: CreateLead(board),
		},
		{
			Path:    "/v1/leads/:id",
			Method:  http.MethodPut,
			Handler: UpdateLead(board),
		},
		{
			Path:    "/v1/renewed",
			Method:  http.MethodGet,
			Handler: ListLeadCollection(board, domain.CollectionRenewed),
		},
	}
}

func Renewals(board Board) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/renewals",
			Method:  http.MethodGet,
			Handler: ListLeadCollection(board, domain.CollectionRenewals),
		},
		{
			Path:    "/v1/renewals/total",
			Method:  http.MethodGet,
			Handler: GetRenewalTotal(board),
		},
		{
			Path:    "/v1/renewals/total",
			Method:  http.MethodPut,
			Handler: SetRenewalTotal(board),
		},
	}
}

func Users(board Board) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/users",
			Method:  http.MethodGet,
			Handler: ListUsers(board),
		},
		{
			Path:    "/v1/users",
			Method:  http.MethodPost,
			Handler: CreateUser(board),
		},
		{
			Path:    "/v1/users/:id",
			Method:  http.MethodPut,
			Handler: UpdateUser(board),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(board),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodPut,
			Handler: SelectMe(board),
		},
	}
}

func SellerRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ranking",
			Method:  http.MethodGet,
			Handler: GetSellerRanking(service),
		},
	}
}

func LiveStream(board Board, hub *StreamHub, allowedOrigins []string) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stream",
			Method:  http.MethodGet,
			Handler: Stream(board, hub, allowedOrigins),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
