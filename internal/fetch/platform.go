package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board platform.
type Platform string

const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformAshby      Platform = "ashby"
	PlatformUnknown    Platform = "unknown"
)

// platformHosts maps host-name fragments to platforms. Checked in order;
// first hit wins.
var platformHosts = []struct {
	fragment string
	platform Platform
}{
	{"greenhouse.io", PlatformGreenhouse},
	{"lever.co", PlatformLever},
	{"myworkdayjobs.com", PlatformWorkday},
	{"workday.com", PlatformWorkday},
	{"ashbyhq.com", PlatformAshby},
}

// platformContent holds the description-container selectors per platform,
// most specific first. Platforms without an entry fall back to the generic
// job posting selectors.
var platformContent = map[Platform][]string{
	PlatformGreenhouse: {
		".job__description.body",
		".job__description",
		".job-description__content",
		"#content",
		".job-post-container",
	},
	PlatformLever: {
		".posting-page",
		".section-wrapper.page-full-width",
		".posting-description",
		".content",
	},
	PlatformWorkday: {
		"[data-automation-id='jobDescription']",
		".WDXK",
		".gwt-HTML",
		".job-description",
	},
	PlatformAshby: {
		"#overview",
		".ashby-job-posting-overview",
		"main",
	},
}

// commonNoise is stripped from every platform: application forms, legal
// boilerplate, and page chrome that would pollute skill extraction.
var commonNoise = []string{
	"form",
	"#application-form",
	".application-form",
	".application--container",
	".apply-button-container",
	"[data-testid='application-form']",

	".voluntary-disclosure",
	".eeo-statement",
	".eeo-section",
	"[data-testid='eeo']",
	".legal-disclosure",
	".self-identification",

	".social-share",
	".share-buttons",
	".social-links",

	".cookie-banner",
	".cookie-consent",
	".gdpr-notice",
}

var platformNoise = map[Platform][]string{
	PlatformGreenhouse: {
		".application--wrapper",
		".voluntary-self-id",
		".voluntary-self-id-wrapper",
		"#usa_self_id_section",
		".post-apply",
	},
	PlatformLever: {
		".apply-section",
		".lever-application-form",
		".posting-apply",
	},
	PlatformWorkday: {
		"[data-automation-id='applyButton']",
		".application-section",
		".WDAF",
	},
	PlatformAshby: {
		".ashby-application-form-container",
		"#application",
	},
}

// DetectPlatform identifies the job board platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	for _, entry := range platformHosts {
		if strings.Contains(host, entry.fragment) {
			return entry.platform
		}
	}
	return PlatformUnknown
}

// PlatformContentSelectors returns the content selectors for a platform,
// falling back to the generic job posting selectors.
func PlatformContentSelectors(platform Platform) []string {
	if selectors, ok := platformContent[platform]; ok {
		return selectors
	}
	return JobPostingSelectors()
}

// PlatformNoiseSelectors returns the noise exclusion selectors for a
// platform: the common set plus any platform-specific additions.
func PlatformNoiseSelectors(platform Platform) []string {
	return append(append([]string{}, commonNoise...), platformNoise[platform]...)
}
