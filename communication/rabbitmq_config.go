package communication

// ReportSinkConfig contains the parameters to publish reports in RabbitMQ
// + Enabled: reports are only published when true
// + URL: amqp URL. If empty the RABBIT_URL environment variable is used
type ReportSinkConfig struct {
	Enabled                   bool                      `yaml:"enabled"`
	URL                       string                    `yaml:"url"`
	ExchangeDeclarationConfig ExchangeDeclarationConfig `yaml:"exchange_declaration_config"`
	PublishingConfig          PublishingConfig          `yaml:"publishing_config"`
}

// ExchangeDeclarationConfig contains the parameters to declare a RabbitMQ exchange
type ExchangeDeclarationConfig struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Durable     bool   `yaml:"durable"`
	AutoDeleted bool   `yaml:"auto_deleted"`
	Internal    bool   `yaml:"internal"`
	NoWait      bool   `yaml:"no_wait"`
}

// PublishingConfig config use it for publishing messages in a RabbitMQ exchange.
// RoutingKey may contain the %s verb, replaced by the city of the report.
type PublishingConfig struct {
	RoutingKey  string `yaml:"routing_key"`
	Mandatory   bool   `yaml:"mandatory"`
	Immediate   bool   `yaml:"immediate"`
	ContentType string `yaml:"content_type"`
}
