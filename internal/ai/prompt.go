package ai

import (
	"fmt"
	"strings"

	"academiafit/gym-app/internal/catalog"
	"academiafit/gym-app/internal/plangen"
)

// systemPrompt instructs the model on split structure, exercise selection
// and the exact output shape. The allowed-exercise list comes straight from
// the catalog so the validator has a fighting chance of keeping the output.
func systemPrompt(cat *catalog.Catalog) string {
	var b strings.Builder
	b.WriteString(`Você é um personal trainer de elite, especialista em fisiologia do exercício.
Sua tarefa é criar um PLANO DE TREINO SEMANAL OTIMIZADO, usando APENAS os exercícios da lista fornecida.

Lista de Exercícios Disponíveis (use APENAS estes, com o nome exato):
`)
	for _, g := range cat.Groups() {
		fmt.Fprintf(&b, "\n## Grupo Muscular: %s\n", g.MuscleGroup)
		for _, e := range g.Exercises {
			fmt.Fprintf(&b, "- %s\n", e.Name)
		}
	}
	b.WriteString(`
Diretrizes:
1. Divisão: 2-3 dias = Full Body (A/B); 4 dias = Superior/Inferior; 5+ dias = por grupo muscular (ABCDE).
2. Exercícios por treino: Iniciante 4-5, Intermediário 5-7, Avançado 6-8. Não invente exercícios.
3. Séries e repetições: Hipertrofia 3-4x8-12; Força 4-5x4-6; Perda de Peso 3-4x15-20.
4. Sugira um dia da semana para cada treino (0=Domingo ... 6=Sábado), com descanso apropriado.
5. Preencha muscleGroup com o nome exato do grupo da lista.

Responda SOMENTE com um objeto JSON neste formato:
{
  "planName": "Plano de Hipertrofia - 3 dias",
  "workouts": [
    {
      "name": "Treino A: Full Body",
      "objective": "Hipertrofia",
      "suggestedDay": 1,
      "exercises": [
        {"name": "Agachamento Livre", "muscleGroup": "Pernas (Quadríceps e Glúteos)", "sets": 4, "repRange": "8-12", "notes": "Manter a postura correta."}
      ]
    }
  ]
}`)
	return b.String()
}

func userPrompt(req plangen.GenerationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Objetivo Principal: %s\n", req.Objective)
	fmt.Fprintf(&b, "Nível de Experiência: %s\n", req.ExperienceLevel)
	fmt.Fprintf(&b, "Dias de Treino por Semana: %d\n", req.DaysPerWeek)
	if req.Notes != "" {
		fmt.Fprintf(&b, "Observações Importantes: %s\n", req.Notes)
	}
	return b.String()
}
