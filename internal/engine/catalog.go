package engine

// Static catalogs backing the classifier and synthesizer. The keyword table
// is ordered: dedup keeps the first occurrence in table order, so truncation
// to the subject cap is deterministic regardless of input order.

const (
	maxSubjects         = 4
	maxTopicsPerSubject = 8
	maxRecommendations  = 8
	maxMilestones       = 12
	maxInsightTopics    = 10
	maxFocusAreas       = 5
)

type subjectKeyword struct {
	keyword string
	subject string
}

var subjectKeywordTable = []subjectKeyword{
	{"calculus", "AP Calculus AB"},
	{"calc", "AP Calculus AB"},
	{"derivative", "AP Calculus AB"},
	{"integral", "AP Calculus AB"},
	{"biology", "AP Biology"},
	{"cell", "AP Biology"},
	{"genetics", "AP Biology"},
	{"chemistry", "AP Chemistry"},
	{"chem", "AP Chemistry"},
	{"physics", "AP Physics 1"},
	{"mechanics", "AP Physics 1"},
	{"statistics", "AP Statistics"},
	{"stats", "AP Statistics"},
	{"probability", "AP Statistics"},
	{"computer science", "AP Computer Science A"},
	{"programming", "AP Computer Science A"},
	{"java", "AP Computer Science A"},
	{"coding", "AP Computer Science A"},
	{"world history", "AP World History"},
	{"us history", "AP US History"},
	{"american history", "AP US History"},
	{"history", "AP US History"},
	{"government", "AP US Government"},
	{"civics", "AP US Government"},
	{"economics", "AP Macroeconomics"},
	{"econ", "AP Macroeconomics"},
	{"psychology", "AP Psychology"},
	{"psych", "AP Psychology"},
	{"literature", "AP English Literature"},
	{"english", "AP English Language"},
	{"essay", "AP English Language"},
	{"writing", "AP English Language"},
	{"environmental", "AP Environmental Science"},
	{"ecology", "AP Environmental Science"},
	{"spanish", "AP Spanish Language"},
	{"french", "AP French Language"},
	{"art history", "AP Art History"},
	{"music theory", "AP Music Theory"},
}

// defaultSubjects is returned when no keyword matches at all.
var defaultSubjects = []string{"AP Calculus AB", "AP English Language", "AP US History"}

// subjectTopicCatalog holds the ordered topic list per recognized subject.
// Subjects outside this table get the generic three-topic fallback.
var subjectTopicCatalog = map[string][]string{
	"AP Calculus AB": {
		"Limits and Continuity",
		"Derivatives and Differentiation Rules",
		"Applications of Derivatives",
		"Integrals and Antiderivatives",
		"Applications of Integration",
		"Differential Equations",
	},
	"AP Biology": {
		"Chemistry of Life",
		"Cell Structure and Function",
		"Cellular Energetics",
		"Heredity and Genetics",
		"Gene Expression and Regulation",
		"Natural Selection and Evolution",
		"Ecology",
	},
	"AP Chemistry": {
		"Atomic Structure and Properties",
		"Molecular and Ionic Compound Structure",
		"Chemical Reactions",
		"Kinetics",
		"Thermodynamics",
		"Equilibrium",
		"Acids and Bases",
	},
	"AP Physics 1": {
		"Kinematics",
		"Dynamics and Newton's Laws",
		"Circular Motion and Gravitation",
		"Energy and Work",
		"Momentum",
		"Simple Harmonic Motion",
	},
	"AP Statistics": {
		"Exploring One-Variable Data",
		"Exploring Two-Variable Data",
		"Collecting Data",
		"Probability and Random Variables",
		"Sampling Distributions",
		"Statistical Inference",
	},
	"AP Computer Science A": {
		"Primitive Types and Objects",
		"Boolean Expressions and Control Flow",
		"Iteration",
		"Classes and Object-Oriented Design",
		"Arrays and ArrayLists",
		"Recursion",
	},
	"AP US History": {
		"Colonial America",
		"The American Revolution",
		"Civil War and Reconstruction",
		"Industrialization and Progressivism",
		"The World Wars",
		"Cold War America",
		"Modern America",
	},
	"AP World History": {
		"The Global Tapestry",
		"Networks of Exchange",
		"Land-Based Empires",
		"Revolutions and Industrialization",
		"Global Conflict",
		"Globalization",
	},
	"AP English Language": {
		"Rhetorical Analysis",
		"Argument Construction",
		"Synthesis of Sources",
		"Style and Tone",
		"Revision and Editing",
	},
	"AP Psychology": {
		"Biological Bases of Behavior",
		"Sensation and Perception",
		"Learning and Memory",
		"Cognitive Psychology",
		"Developmental Psychology",
		"Social Psychology",
	},
}

// genericTopicNames builds the fallback catalog for unrecognized subjects,
// including free-form "AP <phrase>" subjects coming from user goals.
func genericTopicNames(subject string) []string {
	return []string{
		subject + " Fundamentals",
		subject + " Applications",
		subject + " Problem Solving",
	}
}

// Learning-style supplements appended to the two universal base entries.
var styleResources = map[string][]string{
	StyleVisual:      {"Video walkthroughs with annotated diagrams", "Concept maps linking related ideas"},
	StyleAuditory:    {"Recorded lectures and topic podcasts", "Self-recorded verbal summaries"},
	StyleKinesthetic: {"Interactive simulations and manipulatives", "Hands-on practice labs"},
	StyleReading:     {"Supplementary readings with margin notes", "Written summaries after each section"},
}

var styleAssessments = map[string][]string{
	StyleVisual:      {"Diagram-labeling checks"},
	StyleAuditory:    {"Explain-it-aloud self checks"},
	StyleKinesthetic: {"Worked-problem drills"},
	StyleReading:     {"Written free-response checks"},
}

var styleObjectives = map[string]string{
	StyleVisual:      "Visualize the relationships in this topic with diagrams and graphs",
	StyleAuditory:    "Explain the key ideas of this topic verbally in your own words",
	StyleKinesthetic: "Apply this topic hands-on through worked practice problems",
	StyleReading:     "Analyze this topic by writing structured summaries",
}
