package golden

// sampleRiskyJSON is a head-office export carrying a representative slice of
// the rule battery: exposure, disabled protections, weak admin hygiene and
// stale system settings.
const sampleRiskyJSON = `{
  "device": "fw-hq-01",
  "vendor": "sonicwall",
  "config": {
    "rules": [
      {
        "name": "wan-open",
        "source_zone": "WAN",
        "destination_zone": "LAN",
        "source_address": "any",
        "destination_address": "any",
        "service": "any",
        "action": "allow",
        "enabled": true,
        "comment": "temporary vendor access"
      },
      {
        "name": "lan-out-all",
        "source_zone": "LAN",
        "destination_zone": "WAN",
        "source_address": "any",
        "destination_address": "any",
        "service": "any",
        "action": "allow",
        "enabled": true,
        "comment": "outbound everything"
      },
      {
        "name": "lan-web",
        "source_zone": "LAN",
        "destination_zone": "WAN",
        "source_address": "10.0.0.0/24",
        "destination_address": "any",
        "service": "https",
        "action": "allow",
        "enabled": true,
        "comment": ""
      }
    ],
    "security_settings": {
      "ips_enabled": false,
      "gav_enabled": true,
      "anti_spyware_enabled": true,
      "app_control_enabled": true,
      "content_filter_enabled": true,
      "botnet_filter_enabled": true,
      "dpi_ssl_enabled": true,
      "geo_ip_filter_enabled": true
    },
    "admin_settings": {
      "admin_usernames": ["admin"],
      "mfa_enabled": false,
      "wan_management_enabled": false,
      "https_admin_port": 8443,
      "ssh_enabled": true
    },
    "interfaces": [
      {"name": "X1", "zone": "WAN", "ip_address": "203.0.113.2", "dhcp_server_enabled": true},
      {"name": "X0", "zone": "LAN", "ip_address": "10.0.0.1"}
    ],
    "vpn_configs": [
      {"name": "legacy-branch", "encryption": "3DES", "authentication_method": "psk"}
    ],
    "system_settings": {
      "firmware_version": "6.5.4.4-44n (2024-01-15)",
      "hostname": "fw-hq-01",
      "ntp_servers": []
    }
  }
}`

// sampleSafeYAML is a branch export that should come back clean.
const sampleSafeYAML = `device: fw-branch-02
vendor: sonicwall
config:
  rules:
    - name: lan-web
      source_zone: LAN
      destination_zone: WAN
      source_address: 10.1.0.0/24
      destination_address: any
      service: https
      action: allow
      enabled: true
      comment: branch web access
  security_settings:
    ips_enabled: true
    gav_enabled: true
    anti_spyware_enabled: true
    app_control_enabled: true
    content_filter_enabled: true
    botnet_filter_enabled: true
    dpi_ssl_enabled: true
    geo_ip_filter_enabled: true
  admin_settings:
    admin_usernames: [secops-fw]
    mfa_enabled: true
    wan_management_enabled: false
    https_admin_port: 8443
    ssh_enabled: false
  interfaces:
    - name: X0
      zone: LAN
      ip_address: 10.1.0.1
  vpn_configs:
    - name: branch-hq
      encryption: aes256
      authentication_method: certificate
  system_settings:
    firmware_version: 7.1.2-8100 (2025-06-15)
    hostname: fw-branch-02
    ntp_servers: [pool.ntp.org, time.example.net]
`
