package config

// Sample is a commented example configuration, printed by
// `ding --sample-config`. Every section is optional.
const Sample = `# ding configuration
# Default location: $XDG_CONFIG_HOME/ding/config.yaml
# (usually ~/.config/ding/config.yaml)
#
# All sections are optional. Remove the ones you do not use.

# Send a push notification via https://pushover.net
#pushover:
#  api_token: "your-application-token"
#  user_key: "your-user-key"
#  # Optional: deliver to a single device only.
#  #device: "my-phone"

# POST the message to an HTTP endpoint.
#webhook:
#  url: "https://example.com/hooks/ding"
#  # Optional: GET, POST, PUT or PATCH. Defaults to POST.
#  #method: "POST"
#  # Optional: extra request headers.
#  #headers:
#  #  Authorization: "Bearer your-token"

# Play an audio file instead of the synthesized beep.
# url takes priority over file when both are set.
#sound:
#  file: "~/sounds/ding.wav"
#  #url: "https://example.com/ding.ogg"

# Show a desktop notification over D-Bus.
#desktop:
#  app_name: "ding"
`
