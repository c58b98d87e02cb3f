package analyzer

import (
	"regexp"
	"strings"

	"hireready/internal/domain"
)

// Skill detection relies on word-boundary anchors so that, for example,
// "Java" is not detected inside "JavaScript". RE2 has no lookaheads, so
// the few exclusion rules (Java vs JavaScript, C vs C++/C#, React vs
// React Native) are handled separately below.
var skillPatterns = map[string][]*regexp.Regexp{
	// Programming languages
	"Python":     compileAll(`\bpython\b`),
	"C++":        compileAll(`\bc\+\+`, `\bcpp\b`),
	"JavaScript": compileAll(`\bjavascript\b`, `\bjs\b`),
	"Go":         compileAll(`\bgolang\b`, `\bgo\b`),
	"Rust":       compileAll(`\brust\b`),
	"TypeScript": compileAll(`\btypescript\b`, `\bts\b`),
	"SQL":        compileAll(`\bsql\b`, `\bmysql\b`, `\bpostgresql\b`, `\bpostgres\b`),

	// Frameworks / runtimes
	"Node":    compileAll(`\bnode\.?js\b`, `\bnode\b`),
	"Spring":  compileAll(`\bspring\b`),
	"Django":  compileAll(`\bdjango\b`),
	"Flask":   compileAll(`\bflask\b`),
	"FastAPI": compileAll(`\bfastapi\b`, `\bfast\s*api\b`),
	"Express": compileAll(`\bexpress\.?js\b`, `\bexpress\b`),
	"Angular": compileAll(`\bangular\b`),
	"Vue":     compileAll(`\bvue\.?js\b`, `\bvue\b`),
	"NextJS":  compileAll(`\bnext\.?js\b`, `\bnextjs\b`),
	"HTML":    compileAll(`\bhtml5?\b`),
	"CSS":     compileAll(`\bcss3?\b`, `\bsass\b`, `\bscss\b`),

	// ML / AI
	"TensorFlow":        compileAll(`\btensorflow\b`, `\btf\b`),
	"PyTorch":           compileAll(`\bpytorch\b`),
	"Scikit":            compileAll(`\bscikit[\s\-]?learn\b`, `\bsklearn\b`, `\bscikit\b`),
	"Pandas":            compileAll(`\bpandas\b`),
	"NLP":               compileAll(`\bnlp\b`, `\bnatural\s+language\s+processing\b`),
	"ComputerVision":    compileAll(`\bcomputer\s*vision\b`, `\bcv\b`, `\bopencv\b`),
	"LLM":               compileAll(`\bllm\b`, `\blarge\s+language\s+model\b`),
	"PromptEngineering": compileAll(`\bprompt\s*engineering\b`),

	// Cloud / DevOps
	"AWS":        compileAll(`\baws\b`, `\bamazon\s+web\s+services\b`),
	"Azure":      compileAll(`\bazure\b`),
	"GCP":        compileAll(`\bgcp\b`, `\bgoogle\s+cloud\b`),
	"Docker":     compileAll(`\bdocker\b`),
	"Kubernetes": compileAll(`\bkubernetes\b`, `\bk8s\b`),
	"CI/CD": compileAll(`\bci\s*/\s*cd\b`, `\bcicd\b`, `\bcontinuous\s+integration\b`,
		`\bcontinuous\s+deployment\b`, `\bcontinuous\s+delivery\b`,
		`\bgithub\s+actions\b`, `\bjenkins\b`),

	// Security
	"EthicalHacking":  compileAll(`\bethical\s*hacking\b`, `\bpenetration\s*testing\b`, `\bpen\s*test\b`),
	"Cryptography":    compileAll(`\bcryptography\b`, `\bcrypto\b`),
	"NetworkSecurity": compileAll(`\bnetwork\s*security\b`, `\bfirewall\b`, `\bintrusion\s+detection\b`),

	// Mobile
	"Android":     compileAll(`\bandroid\b`),
	"Flutter":     compileAll(`\bflutter\b`),
	"ReactNative": compileAll(`\breact\s*native\b`),

	// CS fundamentals
	"OOPS":         compileAll(`\boops\b`, `\bobject[\s\-]oriented\b`, `\boop\b`),
	"SystemDesign": compileAll(`\bsystem\s*design\b`, `\bhld\b`, `\blld\b`),
	"DBMS":         compileAll(`\bdbms\b`, `\bdatabase\s+management\b`, `\brdbms\b`),
	"OS":           compileAll(`\boperating\s*system\b`),
}

// Exclusion-rule patterns. A trailing capture group marks the suffix that
// disqualifies the match: "java script" is JavaScript, "react native" is
// ReactNative.
var (
	javaRe    = regexp.MustCompile(`\bjava(\s*script)?\b`)
	reactJSRe = regexp.MustCompile(`\breact\.?js\b`)
	reactRe   = regexp.MustCompile(`\breact(\s*native)?\b`)
	bareCRe   = regexp.MustCompile(`\bc\b`)
)

var internshipPatterns = map[string][]*regexp.Regexp{
	"internship_backend": compileAll(`\bbackend\b`, `\bback[\s\-]end\b`, `\bserver[\s\-]side\b`,
		`\bfull[\s\-]?stack\b`, `\bweb\s+develop`),
	"internship_ai": compileAll(`\bai\b`, `\bartificial\s+intelligence\b`,
		`\bmachine\s+learning\b`, `\bml\b`, `\bdata\s+science\b`, `\bdeep\s+learning\b`),
	"internship_cloud":    compileAll(`\bcloud\b`, `\bdevops\b`, `\binfrastructure\b`, `\bsre\b`),
	"internship_security": compileAll(`\bsecurity\b`, `\bcyber\b`, `\bsoc\b`),
	"internship_mobile":   compileAll(`\bmobile\b`, `\bandroid\b`, `\bios\b`, `\bflutter\b`, `\breact\s*native\b`),
	"internship_data": compileAll(`\bdata\s+engineer\b`, `\bdata\s+analy`, `\betl\b`,
		`\bdata\s+pipeline\b`, `\bbig\s*data\b`),
}

var projectPatterns = map[string][]*regexp.Regexp{
	"num_backend_projects": compileAll(`\bbackend\b`, `\brest\s*api\b`, `\bweb\s+app\b`,
		`\bserver\b`, `\bmicroservice\b`, `\bcrud\b`),
	"num_ai_projects": compileAll(`\bmachine\s+learning\b`, `\bml\b`, `\bai\b`,
		`\bdeep\s+learning\b`, `\bneural\s+net`, `\bnlp\b`, `\bcomputer\s*vision\b`,
		`\bclassifi`, `\bpredict`),
	"num_mobile_projects": compileAll(`\bmobile\s+app\b`, `\bandroid\s+app\b`,
		`\bios\s+app\b`, `\bflutter\b`, `\breact\s*native\b`),
	"num_cloud_projects": compileAll(`\bcloud\b`, `\baws\b`, `\bazure\b`, `\bgcp\b`,
		`\bdeployed\s+on\b`, `\bterraform\b`, `\bdocker\b`, `\bkubernetes\b`),
	"num_security_projects": compileAll(`\bsecurity\b`, `\bethical\s*hack`,
		`\bvulnerability\b`, `\bpenetration\b`, `\bcryptograph`),
}

// Cap on per-category project counts so a keyword-stuffed resume cannot
// dominate the vector.
const maxProjectsPerCategory = 10

var (
	internRe     = regexp.MustCompile(`\bintern`) // intern, interned, internship
	experienceRe = regexp.MustCompile(`\bexperience\b`)
	projectRe    = regexp.MustCompile(`\bproject\b`)
	projectsRe   = regexp.MustCompile(`\bprojects\b`)
)

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

// ExtractResumeFeatures parses resume text into a partial feature vector
// containing skill flags, internship domain flags, and project counts.
// Empty or whitespace-only text yields a zero vector; this function never
// fails on malformed input.
func ExtractResumeFeatures(text string) domain.FeatureVector {
	features := domain.NewFeatureVector()

	if strings.TrimSpace(text) == "" {
		return features
	}

	lower := strings.ToLower(text)

	for skill, patterns := range skillPatterns {
		for _, re := range patterns {
			if re.MatchString(lower) {
				features[skill] = 1
				break
			}
		}
	}
	applyExclusionRules(lower, features)

	// Internship detection: look at ~200 chars of context around each
	// "intern" mention so multi-line descriptions are covered; fall back
	// to the text after "experience" headers.
	internContext := gatherContext(lower, internRe, 100, 100)
	if internContext == "" {
		internContext = gatherContext(lower, experienceRe, 0, 500)
	}
	for feature, patterns := range internshipPatterns {
		for _, re := range patterns {
			if re.MatchString(internContext) {
				features[feature] = 1
				break
			}
		}
	}

	// Project counting over the same kind of context windows.
	projectContext := gatherContext(lower, projectRe, 100, 100)
	if projectContext == "" {
		projectContext = gatherContext(lower, projectsRe, 0, 500)
	}
	for feature, patterns := range projectPatterns {
		count := 0
		for _, re := range patterns {
			count += len(re.FindAllStringIndex(projectContext, -1))
		}
		if count > maxProjectsPerCategory {
			count = maxProjectsPerCategory
		}
		features[feature] = float64(count)
	}

	return features
}

// ExtractSkills returns the canonical names of every skill detected in the
// text. Used by the match engine to infer a candidate's skill set.
func ExtractSkills(text string) []string {
	features := ExtractResumeFeatures(text)
	var skills []string
	for _, col := range domain.FeatureColumns {
		if _, ok := skillPatterns[col]; !ok && col != "Java" && col != "C" && col != "React" {
			continue
		}
		if features[col] >= 1 {
			skills = append(skills, col)
		}
	}
	return skills
}

// applyExclusionRules handles the detections RE2 lookaheads would have
// expressed: Java must not fire on JavaScript, React must not fire on
// React Native, and a bare C must not fire on C++ or C#.
func applyExclusionRules(lower string, features domain.FeatureVector) {
	for _, m := range javaRe.FindAllStringSubmatch(lower, -1) {
		if m[1] == "" {
			features["Java"] = 1
			break
		}
	}

	if reactJSRe.MatchString(lower) {
		features["React"] = 1
	} else {
		for _, m := range reactRe.FindAllStringSubmatch(lower, -1) {
			if m[1] == "" {
				features["React"] = 1
				break
			}
		}
	}

	for _, loc := range bareCRe.FindAllStringIndex(lower, -1) {
		rest := lower[loc[1]:]
		if strings.HasPrefix(rest, "++") || strings.HasPrefix(rest, "#") {
			continue
		}
		features["C"] = 1
		break
	}
}

// gatherContext concatenates windows of text around every match of re.
func gatherContext(text string, re *regexp.Regexp, before, after int) string {
	var b strings.Builder
	for _, loc := range re.FindAllStringIndex(text, -1) {
		start := loc[0] - before
		if start < 0 {
			start = 0
		}
		end := loc[1] + after
		if end > len(text) {
			end = len(text)
		}
		b.WriteString(text[start:end])
		b.WriteByte(' ')
	}
	return b.String()
}
