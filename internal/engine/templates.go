package engine

// questionTemplate is a static exercise blueprint. Templates deliberately
// use the words "basic"/"simple" so the difficulty rewrite has an anchor.
type questionTemplate struct {
	qtype         string
	question      string
	options       []string
	correctAnswer interface{}
	explanation   string
}

// subjectTemplates holds per-subject pools for single-content generation.
var subjectTemplates = map[string][]questionTemplate{
	"AP Calculus AB": {
		{
			qtype:         QuestionMultipleChoice,
			question:      "What is the derivative of a basic polynomial term x^n?",
			options:       []string{"n*x^(n-1)", "x^(n+1)/(n+1)", "n*x^n", "x^(n-1)"},
			correctAnswer: 0,
			explanation:   "The power rule lowers the exponent by one and multiplies by the original exponent. This is the most basic differentiation rule.",
		},
		{
			qtype:         QuestionMultipleChoice,
			question:      "For a simple limit as x approaches a, when can you evaluate by direct substitution?",
			options:       []string{"When the function is continuous at a", "Only when the limit is zero", "Never", "Only for polynomials of degree 1"},
			correctAnswer: 0,
			explanation:   "Continuity at the point means the limit equals the function value, so a simple substitution suffices.",
		},
		{
			qtype:         QuestionProblemSolving,
			question:      "A particle moves with velocity v(t) = 3t^2 - 4. Find the displacement over [0, 2] using a basic definite integral.",
			correctAnswer: "Integrate: t^3 - 4t from 0 to 2 gives 8 - 8 = 0.",
			explanation:   "Displacement is the definite integral of velocity. Antidifferentiate term by term and evaluate at the bounds.",
		},
	},
	"AP Biology": {
		{
			qtype:         QuestionMultipleChoice,
			question:      "Which organelle carries out the basic energy conversion of cellular respiration?",
			options:       []string{"Mitochondrion", "Chloroplast", "Ribosome", "Golgi apparatus"},
			correctAnswer: 0,
			explanation:   "Mitochondria convert the chemical energy of glucose into ATP through respiration.",
		},
		{
			qtype:         QuestionShortAnswer,
			question:      "In a simple sentence, state the role of enzymes in metabolic reactions.",
			correctAnswer: "Enzymes lower activation energy and speed up reactions without being consumed.",
			explanation:   "Enzymes are biological catalysts; they are not changed by the reactions they accelerate.",
		},
		{
			qtype:         QuestionMultipleChoice,
			question:      "Which process explains how a basic trait becomes more common in a population over generations?",
			options:       []string{"Natural selection", "Osmosis", "Transcription", "Fermentation"},
			correctAnswer: 0,
			explanation:   "Heritable traits that improve reproductive success increase in frequency through natural selection.",
		},
	},
	"AP Chemistry": {
		{
			qtype:         QuestionMultipleChoice,
			question:      "In a basic acid-base reaction, what does the acid donate?",
			options:       []string{"A proton", "An electron pair", "A neutron", "A hydroxide ion"},
			correctAnswer: 0,
			explanation:   "Under the Bronsted-Lowry definition, acids are proton donors and bases are proton acceptors.",
		},
		{
			qtype:         QuestionProblemSolving,
			question:      "Balance this simple equation: H2 + O2 -> H2O, and state the mole ratio of H2 to O2.",
			correctAnswer: "2H2 + O2 -> 2H2O; the ratio is 2:1.",
			explanation:   "Conservation of mass requires equal atoms on both sides; balancing gives a 2:1 hydrogen-to-oxygen ratio.",
		},
	},
	"AP US History": {
		{
			qtype:         QuestionMultipleChoice,
			question:      "What was the basic cause of the American Revolution's escalation after 1765?",
			options:       []string{"Parliamentary taxation without colonial representation", "Disputes over the Pacific territories", "The Louisiana Purchase", "The cotton gin"},
			correctAnswer: 0,
			explanation:   "Acts like the Stamp Act taxed colonists who had no seats in Parliament, driving the protest movement.",
		},
		{
			qtype:         QuestionEssay,
			question:      "Explain, in a simple argument with evidence, how Reconstruction changed the constitutional status of formerly enslaved people.",
			correctAnswer: "A strong answer cites the 13th, 14th, and 15th Amendments and weighs their enforcement against later rollback.",
			explanation:   "The Reconstruction Amendments redefined citizenship and suffrage; graders look for specific evidence and a clear thesis.",
		},
	},
	"AP English Language": {
		{
			qtype:         QuestionShortAnswer,
			question:      "Identify the rhetorical appeal in this basic claim: 'As a doctor of thirty years, I can tell you this treatment works.'",
			correctAnswer: "Ethos: the speaker leans on professional credibility.",
			explanation:   "Citing professional experience is an appeal to the speaker's authority and character.",
		},
		{
			qtype:         QuestionEssay,
			question:      "Write a simple thesis statement for an essay arguing for or against school uniforms, then defend its structure.",
			correctAnswer: "A defensible thesis takes a clear position and previews two or three lines of reasoning.",
			explanation:   "A strong thesis is arguable, specific, and signals the essay's organization.",
		},
	},
}

// genericTemplates backs content generation for unrecognized subjects.
var genericTemplates = []questionTemplate{
	{
		qtype:         QuestionMultipleChoice,
		question:      "Which study approach best builds a basic understanding of a new topic?",
		options:       []string{"Active recall with spaced practice", "Rereading notes once", "Highlighting the textbook", "Cramming the night before"},
		correctAnswer: 0,
		explanation:   "Testing yourself and spacing reviews produce far stronger retention than passive review.",
	},
}

// Question-set category pools, indexed with wrap-around so any count of
// questions can be drawn from a small pool.
var questionSetCategories = []struct {
	title       string
	description string
}{
	{"Conceptual Understanding", "Check that the underlying ideas are solid before drilling procedures."},
	{"Problem Solving", "Apply the concepts step by step under light time pressure."},
	{"Application", "Transfer the concepts to new, exam-style scenarios."},
}

var categoryTemplates = map[string][]questionTemplate{
	"Conceptual Understanding": {
		{
			qtype:         QuestionMultipleChoice,
			question:      "Which statement best captures the basic idea behind %TOPIC%?",
			options:       []string{"The core definition and when it applies", "A memorized formula with no conditions", "An unrelated procedure", "A special case only"},
			correctAnswer: 0,
			explanation:   "Concepts are defined by what they mean and when they apply, not by a memorized formula alone.",
		},
		{
			qtype:         QuestionShortAnswer,
			question:      "In your own words, give a simple explanation of %TOPIC% to a classmate.",
			correctAnswer: "A clear answer states the definition and one situation where it applies.",
			explanation:   "Being able to restate an idea plainly is the strongest check of conceptual understanding.",
		},
	},
	"Problem Solving": {
		{
			qtype:         QuestionProblemSolving,
			question:      "Work a basic %TOPIC% problem: set up the approach, carry it through, and verify the result.",
			correctAnswer: "Full credit requires the setup, the worked steps, and a stated check of the answer.",
			explanation:   "AP rubrics score the setup and verification, not just the final value.",
		},
		{
			qtype:         QuestionMultipleChoice,
			question:      "When a simple %TOPIC% problem stalls, what is the best first move?",
			options:       []string{"Restate what is given and what is asked", "Guess and move on", "Start over from memory", "Skip the setup"},
			correctAnswer: 0,
			explanation:   "Separating givens from the goal usually exposes the missing link in a stalled problem.",
		},
	},
	"Application": {
		{
			qtype:         QuestionEssay,
			question:      "Describe a real scenario where %TOPIC% applies, and justify the connection with evidence.",
			correctAnswer: "A strong response names a concrete scenario and ties each feature back to the concept.",
			explanation:   "Transfer questions reward explicit mapping between the scenario and the concept's conditions.",
		},
		{
			qtype:         QuestionMultipleChoice,
			question:      "Which scenario is the most basic application of %TOPIC%?",
			options:       []string{"One matching the concept's defining conditions", "One sharing only surface vocabulary", "One contradicting its assumptions", "None of these"},
			correctAnswer: 0,
			explanation:   "A valid application satisfies the concept's conditions, not just its vocabulary.",
		},
	},
}

// Per-subject enrichment tables for generated content.
var subjectConcepts = map[string][]string{
	"AP Calculus AB":        {"limits", "derivatives", "integrals", "the Fundamental Theorem of Calculus"},
	"AP Biology":            {"cell structure", "energy transfer", "heredity", "evolution"},
	"AP Chemistry":          {"atomic structure", "stoichiometry", "equilibrium", "thermodynamics"},
	"AP Physics 1":          {"kinematics", "forces", "energy conservation", "momentum"},
	"AP Statistics":         {"distributions", "sampling", "inference", "probability"},
	"AP US History":         {"causation", "continuity and change", "primary source analysis"},
	"AP English Language":   {"rhetorical situation", "claims and evidence", "style"},
	"AP Computer Science A": {"control flow", "object-oriented design", "arrays", "recursion"},
}

var subjectSkills = map[string][]string{
	"AP Calculus AB":        {"Implementing mathematical processes", "Connecting representations", "Justifying reasoning"},
	"AP Biology":            {"Concept explanation", "Scientific investigation", "Data analysis"},
	"AP Chemistry":          {"Models and representations", "Quantitative reasoning", "Experimental design"},
	"AP Physics 1":          {"Modeling", "Mathematical routines", "Scientific argumentation"},
	"AP Statistics":         {"Selecting statistical methods", "Data analysis", "Statistical argumentation"},
	"AP US History":         {"Developments and processes", "Sourcing and situation", "Argumentation"},
	"AP English Language":   {"Rhetorical analysis", "Claim development", "Evidence selection"},
	"AP Computer Science A": {"Program design", "Code implementation", "Code testing"},
}

var subjectMistakes = map[string][]string{
	"AP Calculus AB":        {"Dropping the chain rule on composite functions", "Forgetting +C on indefinite integrals", "Confusing a function with its derivative on graphs"},
	"AP Biology":            {"Mixing up mitosis and meiosis outcomes", "Ignoring the role of ATP in transport", "Treating natural selection as goal-directed"},
	"AP Chemistry":          {"Unbalanced equations in stoichiometry", "Sign errors in thermochemistry", "Confusing strong and weak acids"},
	"AP Physics 1":          {"Dropping vector directions", "Using kinematics where forces change", "Confusing mass and weight"},
	"AP Statistics":         {"Confusing correlation with causation", "Misreading sampling distributions", "Ignoring conditions for inference"},
	"AP US History":         {"Vague theses without a position", "Evidence without linkage to the claim", "Chronology errors across periods"},
	"AP English Language":   {"Summarizing instead of analyzing", "Ignoring the rhetorical situation", "Unsupported claims"},
	"AP Computer Science A": {"Off-by-one errors in loops", "Mutating a list while iterating", "Confusing == with .equals on objects"},
}
