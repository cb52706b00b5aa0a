package ir

import "time"

const Version = "1.0"

// Audit is one evaluation pass over a set of device configurations.
type Audit struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Source    string    `json:"source,omitempty"`
	IRVersion string    `json:"ir_version,omitempty"`

	Context  Context   `json:"context"`
	Devices  []Device  `json:"devices"`
	Findings []Finding `json:"findings,omitempty"`
	Score    Score     `json:"score"`
}

type Context struct {
	RuleSeverityThreshold string   `json:"rule_severity_threshold,omitempty"`
	DisabledRules         []string `json:"disabled_rules,omitempty"`
}

// Device is one firewall whose parsed configuration is being audited.
type Device struct {
	Name   string `json:"name"`
	Vendor string `json:"vendor,omitempty"`
	Config Config `json:"config"`
}

// Config is the fully-parsed configuration snapshot of one device.
// The evaluator only reads it; ownership stays with the caller.
type Config struct {
	Rules            []FirewallRule    `json:"rules,omitempty" yaml:"rules"`
	SecuritySettings SecuritySettings  `json:"security_settings" yaml:"security_settings"`
	AdminSettings    AdminSettings     `json:"admin_settings" yaml:"admin_settings"`
	Interfaces       []InterfaceConfig `json:"interfaces,omitempty" yaml:"interfaces"`
	VPNConfigs       []VpnPolicy       `json:"vpn_configs,omitempty" yaml:"vpn_configs"`
	SystemSettings   SystemSettings    `json:"system_settings" yaml:"system_settings"`
}

// Wildcard is the sentinel the upstream export uses for "match anything".
// It is matched case-sensitively, exactly as the exporter produces it.
const Wildcard = "any"

type FirewallRule struct {
	Name               string `json:"name" yaml:"name"`
	SourceZone         string `json:"source_zone" yaml:"source_zone"`
	DestinationZone    string `json:"destination_zone" yaml:"destination_zone"`
	SourceAddress      string `json:"source_address" yaml:"source_address"`
	DestinationAddress string `json:"destination_address" yaml:"destination_address"`
	Service            string `json:"service" yaml:"service"`
	Action             string `json:"action" yaml:"action"` // allow|deny
	Enabled            bool   `json:"enabled" yaml:"enabled"`
	Comment            string `json:"comment,omitempty" yaml:"comment"`
}

type SecuritySettings struct {
	IPSEnabled           bool `json:"ips_enabled" yaml:"ips_enabled"`
	GAVEnabled           bool `json:"gav_enabled" yaml:"gav_enabled"`
	AntiSpywareEnabled   bool `json:"anti_spyware_enabled" yaml:"anti_spyware_enabled"`
	AppControlEnabled    bool `json:"app_control_enabled" yaml:"app_control_enabled"`
	ContentFilterEnabled bool `json:"content_filter_enabled" yaml:"content_filter_enabled"`
	BotnetFilterEnabled  bool `json:"botnet_filter_enabled" yaml:"botnet_filter_enabled"`
	DPISSLEnabled        bool `json:"dpi_ssl_enabled" yaml:"dpi_ssl_enabled"`
	GeoIPFilterEnabled   bool `json:"geo_ip_filter_enabled" yaml:"geo_ip_filter_enabled"`
}

type AdminSettings struct {
	AdminUsernames       []string `json:"admin_usernames,omitempty" yaml:"admin_usernames"`
	MFAEnabled           bool     `json:"mfa_enabled" yaml:"mfa_enabled"`
	WANManagementEnabled bool     `json:"wan_management_enabled" yaml:"wan_management_enabled"`
	HTTPSAdminPort       int      `json:"https_admin_port" yaml:"https_admin_port"`
	SSHEnabled           bool     `json:"ssh_enabled" yaml:"ssh_enabled"`
}

type InterfaceConfig struct {
	Name              string `json:"name" yaml:"name"`
	Zone              string `json:"zone" yaml:"zone"` // WAN|LAN|GUEST|DMZ|...
	IPAddress         string `json:"ip_address,omitempty" yaml:"ip_address"`
	DHCPServerEnabled bool   `json:"dhcp_server_enabled" yaml:"dhcp_server_enabled"`
}

type VpnPolicy struct {
	Name                 string `json:"name" yaml:"name"`
	Encryption           string `json:"encryption" yaml:"encryption"`                       // aes256|3des|des|...
	AuthenticationMethod string `json:"authentication_method" yaml:"authentication_method"` // certificate|psk
}

type SystemSettings struct {
	FirmwareVersion string   `json:"firmware_version,omitempty" yaml:"firmware_version"`
	Hostname        string   `json:"hostname,omitempty" yaml:"hostname"`
	Timezone        string   `json:"timezone,omitempty" yaml:"timezone"`
	NTPServers      []string `json:"ntp_servers,omitempty" yaml:"ntp_servers"`
	DNSServers      []string `json:"dns_servers,omitempty" yaml:"dns_servers"`
}

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Rank orders severities for threshold filtering and report sorting.
// Unknown values rank as low.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	default:
		return 1
	}
}

type Category string

const (
	CategoryExposure         Category = "exposure_risk"
	CategoryMisconfiguration Category = "network_misconfiguration"
	CategoryFeatureDisabled  Category = "security_feature_disabled"
	CategoryBestPractice     Category = "best_practice_violation"
)

type RiskType string

const (
	RiskOpenInbound           RiskType = "OPEN_INBOUND"
	RiskAnyAnyRule            RiskType = "ANY_ANY_RULE"
	RiskWANManagementEnabled  RiskType = "WAN_MANAGEMENT_ENABLED"
	RiskAdminNoMFA            RiskType = "ADMIN_NO_MFA"
	RiskDefaultAdminUsername  RiskType = "DEFAULT_ADMIN_USERNAME"
	RiskIPSDisabled           RiskType = "IPS_DISABLED"
	RiskGAVDisabled           RiskType = "GAV_DISABLED"
	RiskDPISSLDisabled        RiskType = "DPI_SSL_DISABLED"
	RiskBotnetFilterDisabled  RiskType = "BOTNET_FILTER_DISABLED"
	RiskAppControlDisabled    RiskType = "APP_CONTROL_DISABLED"
	RiskContentFilterDisabled RiskType = "CONTENT_FILTER_DISABLED"
	RiskRuleNoDescription     RiskType = "RULE_NO_DESCRIPTION"
	RiskSSHOnWAN              RiskType = "SSH_ON_WAN"
	RiskDefaultAdminPort      RiskType = "DEFAULT_ADMIN_PORT"
	RiskVPNWeakEncryption     RiskType = "VPN_WEAK_ENCRYPTION"
	RiskVPNPSKOnly            RiskType = "VPN_PSK_ONLY"
	RiskGuestNotIsolated      RiskType = "GUEST_NOT_ISOLATED"
	RiskDHCPOnWAN             RiskType = "DHCP_ON_WAN"
	RiskOutdatedFirmware      RiskType = "OUTDATED_FIRMWARE"
	RiskNoNTP                 RiskType = "NO_NTP"
)

// Finding is one classified risk detected in a device configuration.
type Finding struct {
	ID          string   `json:"id"`
	Device      string   `json:"device,omitempty"`
	RiskType    RiskType `json:"risk_type"`
	Severity    Severity `json:"severity"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	// Reference names the offending rule, interface or VPN policy when the
	// finding points at one element rather than a global setting.
	Reference string `json:"reference,omitempty"`
}

// Score is the audit-level posture summary derived from findings.
type Score struct {
	Value int    `json:"value"` // 0..100, 100 = clean
	Grade string `json:"grade"` // A..F
}
