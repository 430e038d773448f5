package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/gin-gonic/gin"
	"github.com/zkairdrop/claim-service/utils/gerror"
)

// Commands accepted by the merkle endpoint
const (
	CommandL2ContractClaimTx = "generate-l2-contract-claim-tx"
	CommandL1ContractClaimTx = "generate-l1-contract-claim-tx"
	CommandL2TransferTx      = "generate-l2-transfer-tx"
)

const contextKeyCommand = "command"

// MerkleRequest is the body of the merkle endpoint
type MerkleRequest struct {
	Command    string `json:"command"`
	Address    string `json:"address"`
	L1GasPrice string `json:"l1GasPrice"`
	L1JsonRpc  string `json:"l1JsonRpc"`
	To         string `json:"to"`
	Amount     string `json:"amount"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// ClaimService serves the claim descriptors over HTTP.
type ClaimService struct {
	ctrl claimController
}

// NewClaimService creates a new ClaimService.
func NewClaimService(ctrl claimController) *ClaimService {
	return &ClaimService{ctrl: ctrl}
}

// Health is the liveness probe
func (s *ClaimService) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Merkle dispatches a claim command.
func (s *ClaimService) Merkle(c *gin.Context) {
	var req MerkleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, &gerror.ValidationError{Msg: "Invalid request body: " + err.Error()})
		return
	}
	c.Set(contextKeyCommand, req.Command)

	resp, err := s.Handle(c.Request.Context(), &req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Handle runs one claim command.
func (s *ClaimService) Handle(ctx context.Context, req *MerkleRequest) (interface{}, error) {
	switch req.Command {
	case CommandL2ContractClaimTx:
		if strings.TrimSpace(req.Address) == "" {
			return nil, gerror.NewMissingParamError("address")
		}
		return s.ctrl.ClaimL2(ctx, strings.TrimSpace(req.Address))
	case CommandL1ContractClaimTx:
		if strings.TrimSpace(req.L1GasPrice) == "" {
			return nil, gerror.NewMissingParamError("l1GasPrice")
		}
		if strings.TrimSpace(req.Address) == "" {
			return nil, gerror.NewMissingParamError("address")
		}
		return s.ctrl.ClaimL1(ctx, req.Address, req.L1GasPrice, strings.TrimSpace(req.L1JsonRpc))
	case CommandL2TransferTx:
		return s.ctrl.TransferData(req.To, req.Amount)
	default:
		return nil, gerror.ErrUnknownCommand
	}
}

func (s *ClaimService) fail(c *gin.Context, err error) {
	code := gerror.HTTPStatus(err)
	if code >= http.StatusInternalServerError {
		log.Errorf("command[%s] failed: %v", c.GetString(contextKeyCommand), err)
	} else {
		log.Debugf("command[%s] rejected: %v", c.GetString(contextKeyCommand), err)
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(code, ErrorResponse{Error: err.Error()})
}
