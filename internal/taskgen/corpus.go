package taskgen

// 生产语料与项目配置。语料为静态数据，服务启动时装载一次。

var defaultCases = []PromptCase{
	{
		Category:  "Chemistry",
		Prompt:    "Explain the difference between ionic and covalent bonds at a molecular level.",
		ResponseA: "Ionic bonds form when electrons are completely transferred from one atom to another, creating charged ions that attract each other. This typically occurs between metals and nonmetals. For example, in NaCl, sodium loses an electron to become Na+ and chlorine gains it to become Cl-. These oppositely charged ions attract strongly. Covalent bonds, on the other hand, involve sharing of electrons between atoms, usually between nonmetals. In H2O, oxygen shares electrons with hydrogen atoms. Ionic compounds tend to form crystalline solids with high melting points and conduct electricity when dissolved, while covalent compounds can be gases, liquids, or solids with lower melting points and generally don't conduct electricity.",
		ResponseB: "Ionic bonds are when atoms give or take electrons and become charged. Covalent bonds are when atoms share electrons. Ionic bonds are between metals and nonmetals, covalent bonds are between nonmetals. Salt is ionic and water is covalent.",
	},
	{
		Category:  "Mathematics",
		Prompt:    "Explain how to solve a quadratic equation using the quadratic formula, and when you would use it.",
		ResponseA: "You use the formula x = (-b ± √(b²-4ac)) / 2a for equations like ax² + bx + c = 0. You plug in the numbers and solve. It works for any quadratic equation.",
		ResponseB: "The quadratic formula x = (-b ± √(b²-4ac)) / 2a is used to solve equations in the form ax² + bx + c = 0. Here's how: 1) Identify coefficients a, b, and c from your equation, 2) Calculate the discriminant (b²-4ac), 3) If it's negative, there are no real solutions; if zero, one solution; if positive, two solutions, 4) Substitute values into the formula, 5) Simplify to get your answer(s). You use this method when factoring is difficult or impossible, or when you need exact solutions. For example, for 2x² + 5x - 3 = 0: a=2, b=5, c=-3, so x = (-5 ± √(25+24))/4 = (-5 ± 7)/4, giving x = 0.5 or x = -3.",
	},
	{
		Category:  "Computer Science",
		Prompt:    "Explain what recursion is in programming and provide a simple example of when it's useful.",
		ResponseA: "Recursion is when a function calls itself. It's useful for solving problems that can be broken down into smaller similar problems. A classic example is calculating factorial: factorial(5) = 5 × factorial(4) = 5 × 4 × factorial(3), and so on until factorial(1) = 1. The function keeps calling itself with smaller numbers until it reaches the base case. Another common use is traversing tree structures in data, where you process a node then recursively process its children. Recursion needs a base case to stop, otherwise it will run forever and cause a stack overflow error.",
		ResponseB: "Recursion is when a function calls itself repeatedly. It's used in programming to solve complex problems. For example, you can use it to calculate numbers or search through data. It's an advanced programming technique.",
	},
	{
		Category:  "Physics",
		Prompt:    "Explain Newton's First Law of Motion and provide a real-world example that demonstrates it.",
		ResponseA: "Newton's First Law states that objects stay still or keep moving unless something pushes or pulls them. Like a ball will keep rolling until friction stops it, or a book on a table won't move unless you push it.",
		ResponseB: "Newton's First Law of Motion, also known as the Law of Inertia, states that an object at rest stays at rest, and an object in motion stays in motion with the same speed and direction, unless acted upon by an unbalanced external force. This means objects naturally resist changes to their state of motion. Real-world example: When you're in a car that suddenly brakes, your body continues moving forward even though the car stops - this is why seatbelts are necessary. Your body has inertia and wants to maintain its forward motion. Similarly, when the car accelerates forward, you feel pushed back into your seat because your body resists the change in motion. This law explains why it's easier to keep a shopping cart moving than to start it from rest.",
	},
	{
		Category:  "Biology",
		Prompt:    "Describe the process of cellular respiration and why it's essential for living organisms.",
		ResponseA: "Cellular respiration is how cells make energy. They use glucose and oxygen to create ATP, which is the energy currency of cells. It happens in the mitochondria and produces carbon dioxide and water as waste.",
		ResponseB: "Cellular respiration is the process by which cells break down glucose to produce ATP (adenosine triphosphate), the primary energy currency for all cellular activities. It occurs in three main stages: 1) Glycolysis (in cytoplasm) breaks glucose into pyruvate, producing 2 ATP, 2) Krebs Cycle (in mitochondria) processes pyruvate and releases CO2, 3) Electron Transport Chain (inner mitochondrial membrane) generates most ATP (~34-36 molecules) using oxygen. The overall equation: C6H12O6 + 6O2 → 6CO2 + 6H2O + ATP. This process is essential because: ATP powers all cellular functions including muscle contraction, nerve impulses, protein synthesis, and DNA replication. Without it, cells cannot perform necessary life functions and the organism would die. This is why we need to continuously breathe oxygen and consume food for glucose.",
	},
	{
		Category:  "Economics",
		Prompt:    "Explain the concept of supply and demand and how it affects prices in a market economy.",
		ResponseA: "Supply and demand is a basic economic principle. When demand for a product increases but supply stays the same, prices go up. When supply increases but demand stays the same, prices go down. It's how markets determine what things should cost.",
		ResponseB: "Supply and demand is the fundamental mechanism that determines prices in a market economy. Supply refers to how much of a product or service is available, while demand refers to how much consumers want it. The interaction works as follows: When demand exceeds supply (high demand, low supply), sellers can charge higher prices because buyers compete for limited goods. Conversely, when supply exceeds demand (low demand, high supply), prices fall as sellers compete to attract buyers. The equilibrium price is reached where supply and demand curves intersect. Real example: During a natural disaster, if water supply is limited but everyone needs it (high demand), prices spike. Conversely, if a new technology makes production easier (increased supply) but interest is moderate (stable demand), prices decrease. This self-regulating mechanism guides resource allocation in free markets without central planning.",
	},
	{
		Category:  "History",
		Prompt:    "Explain the main causes of World War I and how it could have been prevented.",
		ResponseA: "WWI was caused by lots of countries having alliances, so when Austria-Hungary and Serbia had problems, everyone joined in. There was also an arms race and nationalism. It might have been prevented with better diplomacy.",
		ResponseB: "World War I (1914-1918) had multiple interconnected causes: 1) Alliance Systems - Europe was divided into two major alliances (Triple Entente: Britain, France, Russia vs. Triple Alliance: Germany, Austria-Hungary, Italy), creating a domino effect where one conflict triggered many, 2) Militarism and Arms Race - nations built massive armies and navies, creating tension and making war seem inevitable, 3) Nationalism - intense national pride led to conflicts over territories, especially in the Balkans, 4) Imperialism - competition for colonies created rivalries, particularly between Britain and Germany, 5) Immediate trigger - assassination of Archduke Franz Ferdinand. Prevention possibilities: More effective international diplomacy and conflict resolution mechanisms, limiting alliance obligations to only defensive scenarios, arms limitation treaties, addressing Balkan tensions through international mediation, and stronger economic interdependence that would make war financially devastating for all parties.",
	},
	{
		Category:  "Creative Writing",
		Prompt:    "Write an engaging opening paragraph for a mystery novel set in a small coastal town.",
		ResponseA: "There was a murder in the small town. Detective Jane Smith arrived to investigate. The town was quiet and by the ocean. She knew this case would be difficult to solve. The townspeople seemed to be hiding something.",
		ResponseB: "The morning fog rolled off the Atlantic in thick, gray sheets, swallowing the fishing boats in Seaside Harbor one by one until only their mournful horns remained. Detective Jane Smith stood at the end of Pier 7, watching the tide reclaim what the storm had revealed: a body, tangled in fishing nets, pale as the moonlight that had exposed it. The townspeople gathered behind the yellow tape, their whispers sharp as the salt wind, and Jane knew from twenty years of experience that in a town this small, everyone recognized the dead man's face. The question wasn't who he was—it was who among them wanted him gone.",
	},
}

var defaultProjects = []Project{
	{
		ID:              "PROJ_OPENAI_001",
		Name:            "AI Response Quality Evaluation",
		Client:          "OpenAI Research",
		Category:        "AI Response Evaluation",
		Description:     "Compare and evaluate AI-generated responses across multiple criteria including accuracy, clarity, and safety.",
		LongDescription: "In this project, you will evaluate AI responses to user prompts across various subjects including science, mathematics, programming, and more. For each task, you will read two AI-generated responses and rate them on multiple dimensions, check for safety and accuracy, and provide detailed comparative analysis.",
		PayPerTask:      0.75,

		EstimatedTasksAvailable: 50,
		EstimatedTimePerTask:    "2-3 minutes",
		Difficulty:              "Hard",
		Requirements: []string{
			"Strong reading comprehension",
			"Ability to evaluate factual accuracy",
			"Objective comparative analysis",
			"Attention to detail and consistency",
			"Must complete at least 5 tasks per session",
		},
		QualityThreshold: 95,
		TrainingRequired: true,
	},
	{
		ID:              "PROJ_ANTHROPIC_002",
		Name:            "Complex Reasoning Evaluation",
		Client:          "Anthropic AI",
		Category:        "AI Response Evaluation",
		Description:     "Evaluate AI responses for logical reasoning, problem-solving approaches, and analytical depth.",
		LongDescription: "This project focuses on complex prompts requiring multi-step reasoning across STEM fields and humanities. You will rate responses on logic, completeness, clarity, and practical applicability using detailed rubrics.",
		PayPerTask:      0.85,

		EstimatedTasksAvailable: 40,
		EstimatedTimePerTask:    "3-4 minutes",
		Difficulty:              "Expert",
		Requirements: []string{
			"Strong analytical skills",
			"Understanding of logical reasoning",
			"Ability to evaluate complex topics",
			"Consistent evaluation standards",
			"Experience with technical content helpful",
		},
		QualityThreshold: 96,
		TrainingRequired: true,
	},
}

// DefaultCatalog 返回生产语料库。数据固定，校验必然通过。
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultCases, defaultProjects)
	if err != nil {
		panic(err)
	}
	return c
}
