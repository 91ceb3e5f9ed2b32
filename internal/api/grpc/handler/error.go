package handler

import (
	"google.golang.org/grpc/status"

	"github.com/dtroode/marketplace-auth/internal/model"
)

func handleError(err error) error {
	apiErr := model.ToAPIError(err)
	return status.Error(apiErr.GRPCCode, apiErr.Message)
}
