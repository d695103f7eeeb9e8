package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/otr-legal/otr-backend/internal/config"
	"github.com/otr-legal/otr-backend/internal/pg"
	"github.com/otr-legal/otr-backend/internal/repo"
	"github.com/otr-legal/otr-backend/internal/stripeclient"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := pg.NewMockDatabase(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	processor := stripeclient.NewMockProcessor(ctrl)

	cfg := &config.Config{
		PlatformFeePercent: 20,
		B2BVATPercent:      15,
		DefaultCaseQuota:   5,
	}

	services := New(cfg, repo.New(db, txManager), txManager, processor)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.CaseService)
	assert.NotNil(t, services.LawyerService)
	assert.NotNil(t, services.PaymentService)
	assert.NotNil(t, services.MessageService)
	assert.NotNil(t, services.BusinessService)
	assert.NotNil(t, services.AdminService)
}
