package service

import "interview_prep_backend/internal/model"

// 演示内容：生成器容量不足时的固定降级载荷
// 必须确定性，同样的输入永远得到同样的降级结果

var demoQuestionSets = map[model.Role][]string{
	model.RoleProductManagement: {
		"How would you prioritize features for a new mobile app when you have limited development resources?",
		"Describe a time when you had to gather requirements from different stakeholders with conflicting needs.",
		"How would you measure the success of a new product feature after its launch?",
		"Walk me through how you would conduct user research for a feature you're considering.",
		"How would you handle a situation where engineering says a feature will take 6 months but the business wants it in 2 months?",
	},
	model.RoleAIDataAnalyst: {
		"How would you explain a complex data finding to a non-technical stakeholder?",
		"Describe your approach to cleaning and validating a new dataset you've never worked with before.",
		"How would you identify the most important metrics to track for an e-commerce business?",
		"Walk me through how you would investigate a sudden drop in user engagement metrics.",
		"How would you design an A/B test to measure the impact of a new recommendation algorithm?",
	},
	model.RoleQATesting: {
		"How would you test a login feature for a mobile app?",
		"Describe your approach to testing an e-commerce checkout process.",
		"How would you prioritize which bugs to fix first when you have limited time?",
		"Walk me through how you would create test cases for a search functionality.",
		"How would you handle a situation where developers say they can't reproduce a bug you found?",
	},
	model.RoleCustomerSuccess: {
		"How would you handle a frustrated customer who is threatening to cancel their subscription?",
		"Describe how you would onboard a new customer to ensure they get value from our product quickly.",
		"How would you identify which customers are at risk of churning and what would you do about it?",
		"Walk me through how you would conduct a quarterly business review with a key client.",
		"How would you handle a situation where a customer is asking for a feature that doesn't exist in our product?",
	},
	model.RoleBusinessAnalyst: {
		"How would you gather requirements for a new internal process improvement project?",
		"Describe how you would analyze and present the ROI of a proposed system upgrade.",
		"How would you handle conflicting requirements from different business units?",
		"Walk me through your process for documenting and communicating workflow changes.",
		"How would you identify inefficiencies in a current business process and propose solutions?",
	},
}

func demoQuestions(role model.Role) []string {
	if qs, ok := demoQuestionSets[role]; ok {
		return append([]string{}, qs...)
	}
	return append([]string{}, demoQuestionSets[model.RoleProductManagement]...)
}

func demoInterviewFeedback(questions []string) *model.InterviewFeedback {
	analysis := make([]model.QuestionAnalysis, 0, len(questions))
	for i, q := range questions {
		analysis = append(analysis, model.QuestionAnalysis{
			QuestionIndex: i,
			Question:      q,
			Score:         8,
			WhatWorked: []string{
				"Showed logical thinking process",
				"Understood the core challenge",
				"Considered multiple perspectives",
			},
			CouldImprove: []string{
				"Add more specific examples",
				"Mention relevant tools or frameworks",
				"Discuss potential challenges and mitigation",
			},
		})
	}

	return &model.InterviewFeedback{
		OverallScore:  78,
		Grade:         "B+",
		Communication: 4.2,
		Strengths: []model.FeedbackPoint{
			{
				Title:       "Clear Problem-Solving Approach",
				Description: "You demonstrated a structured way of thinking through challenges and breaking them down into manageable components.",
			},
			{
				Title:       "Good Understanding of Role Requirements",
				Description: "Your responses show awareness of key responsibilities and stakeholder dynamics in this position.",
			},
		},
		Improvements: []model.ImprovementPoint{
			{
				Title:       "Provide More Specific Examples",
				Description: "While your conceptual understanding is good, adding concrete examples from projects, internships, or coursework would strengthen your responses.",
				Tip:         "Use the STAR method (Situation, Task, Action, Result) to structure your examples with specific outcomes and metrics.",
			},
			{
				Title:       "Demonstrate Industry Knowledge",
				Description: "Show deeper awareness of current trends, tools, and best practices in your field.",
				Tip:         "Research recent industry developments and mention specific tools or methodologies you've learned about or used.",
			},
		},
		QuestionAnalysis: analysis,
		NextSteps: model.NextSteps{
			PracticeAreas: []string{
				"Behavioral interview techniques (STAR method)",
				"Industry-specific case studies",
				"Technical knowledge for your role",
			},
			Resources: []string{
				"Practice with mock interview platforms",
				"Read industry blogs and case studies",
				"Join professional communities and forums",
			},
		},
	}
}
