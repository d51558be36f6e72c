package main

import (
	"net/http"

	"github.com/localboost/backend/internal/middleware"
	"github.com/localboost/backend/pkg/router"
	"github.com/localboost/backend/pkg/xcontext"
	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadEndpoint()
	s.loadDatabase()
	s.loadStorage()
	s.loadRedis()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	cfg := xcontext.Configs(s.ctx)
	handler := cors.New(cors.Options{
		AllowedOrigins:   cfg.ApiServer.AllowCORS,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(s.router.Handler())

	s.server = &http.Server{
		Addr:    cfg.ApiServer.Address(),
		Handler: handler,
	}

	xcontext.Logger(s.ctx).Infof("Starting server on: %s", cfg.ApiServer.Address())
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}
	xcontext.Logger(s.ctx).Infof("Server stop")

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.AddCloser(middleware.Logger())

	// Auth API
	authRouter := s.router.Branch()
	authRouter.After(middleware.HandleSetAccessToken())
	authRouter.After(middleware.HandleSaveSession())
	{
		router.POST(authRouter, "/verifyIdentity", s.authDomain.VerifyIdentity)
		router.POST(authRouter, "/refresh", s.authDomain.Refresh)
	}

	// These following APIs need authentication with an Access Token.
	onlyTokenAuthRouter := s.router.Branch()
	onlyTokenAuthRouter.Before(middleware.WithAuthentication())
	onlyTokenAuthRouter.Before(middleware.Authenticate())
	{
		// User API
		router.GET(onlyTokenAuthRouter, "/getMe", s.userDomain.GetMe)
		router.POST(onlyTokenAuthRouter, "/updateUser", s.userDomain.Update)
		router.POST(onlyTokenAuthRouter, "/uploadAvatar", s.userDomain.UploadAvatar)

		// Sponsor API
		router.POST(onlyTokenAuthRouter, "/createSponsorProfile", s.sponsorDomain.Create)
		router.GET(onlyTokenAuthRouter, "/getMySponsorProfile", s.sponsorDomain.GetMy)
		router.POST(onlyTokenAuthRouter, "/updateSponsorProfile", s.sponsorDomain.Update)
		router.POST(onlyTokenAuthRouter, "/deleteSponsorProfile", s.sponsorDomain.Delete)

		// Creator API
		router.POST(onlyTokenAuthRouter, "/createCreatorProfile", s.creatorDomain.Create)
		router.GET(onlyTokenAuthRouter, "/getMyCreatorProfile", s.creatorDomain.GetMy)
		router.POST(onlyTokenAuthRouter, "/updateCreatorProfile", s.creatorDomain.Update)
		router.POST(onlyTokenAuthRouter, "/deleteCreatorProfile", s.creatorDomain.Delete)

		// Offering API
		router.POST(onlyTokenAuthRouter, "/createOffering", s.offeringDomain.Create)
		router.POST(onlyTokenAuthRouter, "/updateOffering", s.offeringDomain.Update)
		router.POST(onlyTokenAuthRouter, "/deleteOffering", s.offeringDomain.Delete)

		// Campaign API
		router.POST(onlyTokenAuthRouter, "/createCampaign", s.campaignDomain.Create)
		router.GET(onlyTokenAuthRouter, "/getCampaign", s.campaignDomain.Get)
		router.GET(onlyTokenAuthRouter, "/getListCampaign", s.campaignDomain.GetList)
		router.POST(onlyTokenAuthRouter, "/updateCampaign", s.campaignDomain.Update)
		router.POST(onlyTokenAuthRouter, "/assignCreator", s.campaignDomain.AssignCreator)
		router.POST(onlyTokenAuthRouter, "/activateCampaign", s.campaignDomain.Activate)
		router.POST(onlyTokenAuthRouter, "/cancelCampaign", s.campaignDomain.Cancel)
		router.POST(onlyTokenAuthRouter, "/disputeCampaign", s.campaignDomain.Dispute)
		router.POST(onlyTokenAuthRouter, "/deleteCampaign", s.campaignDomain.Delete)

		// Deliverable API
		router.POST(onlyTokenAuthRouter, "/createDeliverable", s.deliverableDomain.Create)
		router.GET(onlyTokenAuthRouter, "/getListDeliverable", s.deliverableDomain.GetList)
		router.POST(onlyTokenAuthRouter, "/updateDeliverable", s.deliverableDomain.Update)
		router.POST(onlyTokenAuthRouter, "/startDeliverable", s.deliverableDomain.Start)

		// Proof API
		router.POST(onlyTokenAuthRouter, "/submitProof", s.proofDomain.Submit)
		router.GET(onlyTokenAuthRouter, "/getProof", s.proofDomain.Get)
		router.GET(onlyTokenAuthRouter, "/getListProof", s.proofDomain.GetList)
		router.POST(onlyTokenAuthRouter, "/reviewProof", s.proofDomain.Review)

		// Credit API
		router.POST(onlyTokenAuthRouter, "/issueCredit", s.creditDomain.Issue)
		router.GET(onlyTokenAuthRouter, "/getCredit", s.creditDomain.Get)
		router.GET(onlyTokenAuthRouter, "/getListCredit", s.creditDomain.GetList)
		router.POST(onlyTokenAuthRouter, "/redeemCredit", s.creditDomain.Redeem)
		router.POST(onlyTokenAuthRouter, "/cancelCredit", s.creditDomain.Cancel)
		router.POST(onlyTokenAuthRouter, "/expireCredit", s.creditDomain.Expire)

		// Image API
		router.POST(onlyTokenAuthRouter, "/uploadImage", s.fileDomain.UploadImage)
	}

	// Public API.
	router.GET(s.router, "/getSponsorProfile", s.sponsorDomain.Get)
	router.GET(s.router, "/getCreatorProfile", s.creatorDomain.Get)
	router.GET(s.router, "/getListCreatorProfile", s.creatorDomain.GetList)
	router.GET(s.router, "/getOffering", s.offeringDomain.Get)
	router.GET(s.router, "/getListOffering", s.offeringDomain.GetList)
	router.GET(s.router, "/getCreatorLeaderboard", s.statisticDomain.GetCreatorLeaderboard)
}
