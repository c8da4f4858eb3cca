package communication

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/report"
)

const (
	publisherStr      = "report-publisher"
	contentTypeJson   = "application/json"
	defaultRoutingKey = "reports.%s"
	publishTimeout    = 5 * time.Second
)

// messageChannel is the part of RabbitMQ the publisher needs
type messageChannel interface {
	DeclareExchanges(exchangesConfig []ExchangeDeclarationConfig) error
	PublishMessageInExchange(ctx context.Context, exchange string, routingKey string, message []byte, publishingConfig PublishingConfig) error
	KillBadBunny() error
}

// ReportPublisher publishes every report as JSON in the configured exchange
type ReportPublisher struct {
	config  ReportSinkConfig
	channel messageChannel
}

// NewReportPublisher connects to RabbitMQ and declares the report exchange
func NewReportPublisher(sinkConfig ReportSinkConfig) (*ReportPublisher, error) {
	rabbitMQ, err := NewRabbitMQ(sinkConfig.URL)
	if err != nil {
		return nil, fmt.Errorf("[component: %s] error connecting to RabbitMQ: %w", publisherStr, err)
	}

	publisher, err := newReportPublisher(sinkConfig, rabbitMQ)
	if err != nil {
		_ = rabbitMQ.KillBadBunny()
		return nil, err
	}
	return publisher, nil
}

func newReportPublisher(sinkConfig ReportSinkConfig, channel messageChannel) (*ReportPublisher, error) {
	if sinkConfig.PublishingConfig.ContentType == "" {
		sinkConfig.PublishingConfig.ContentType = contentTypeJson
	}
	if sinkConfig.PublishingConfig.RoutingKey == "" {
		sinkConfig.PublishingConfig.RoutingKey = defaultRoutingKey
	}

	err := channel.DeclareExchanges([]ExchangeDeclarationConfig{sinkConfig.ExchangeDeclarationConfig})
	if err != nil {
		return nil, err
	}

	log.Infof("[component: %s][exchange: %s][status: OK] exchange declared correctly!", publisherStr, sinkConfig.ExchangeDeclarationConfig.Name)
	return &ReportPublisher{
		config:  sinkConfig,
		channel: channel,
	}, nil
}

// Publish sends the report to the exchange, routed by city, e.g: reports.new_york
func (rp *ReportPublisher) Publish(ctx context.Context, r *report.Report) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("[component: %s] error marshalling report %s: %w", publisherStr, r.GetReportID(), err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	routingKey := rp.getRoutingKey(r)
	exchange := rp.config.ExchangeDeclarationConfig.Name
	err = rp.channel.PublishMessageInExchange(ctx, exchange, routingKey, payload, rp.config.PublishingConfig)
	if err != nil {
		log.Errorf("[component: %s][exchange: %s][routingKey: %s][status: ERROR] error publishing report: %s", publisherStr, exchange, routingKey, err.Error())
		return err
	}

	log.Debugf("[component: %s][exchange: %s][routingKey: %s][status: OK] report %s published", publisherStr, exchange, routingKey, r.GetReportID())
	return nil
}

func (rp *ReportPublisher) Close() error {
	return rp.channel.KillBadBunny()
}

func (rp *ReportPublisher) getRoutingKey(r *report.Report) string {
	routingKey := rp.config.PublishingConfig.RoutingKey
	if !strings.Contains(routingKey, "%s") {
		return routingKey
	}
	return fmt.Sprintf(routingKey, string(r.GetMetadata().GetCity()))
}
