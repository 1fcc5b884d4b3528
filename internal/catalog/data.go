package catalog

// Exercise names stay in Portuguese: they are the keys the mobile and web
// clients display and the generation oracle is instructed to echo back.
var defaultGroups = []Group{
	{
		MuscleGroup: "Peito",
		Exercises: []Entry{
			{Name: "Supino Reto com Barra", Description: "Deite-se em um banco reto, segure a barra com as mãos um pouco mais afastadas que a largura dos ombros. Desça a barra até tocar o peito e empurre de volta à posição inicial."},
			{Name: "Supino Reto com Halteres", Description: "Deite-se em um banco reto com um halter em cada mão. Desça os halteres até a altura do peito e empurre-os para cima, quase se tocando no topo."},
			{Name: "Supino Inclinado com Barra", Description: "Similar ao supino reto, mas em um banco inclinado a 45 graus. Foco na parte superior do peitoral."},
			{Name: "Crucifixo Reto com Halteres", Description: "Deite-se em um banco reto com halteres. Com os cotovelos levemente flexionados, abra os braços até sentir o peitoral alongar e retorne à posição inicial."},
			{Name: "Peck Deck (Voador)", Description: "Sente-se na máquina com as costas apoiadas. Segure os pegadores e junte-os na frente do corpo, contraindo o peitoral."},
		},
	},
	{
		MuscleGroup: "Costas",
		Exercises: []Entry{
			{Name: "Levantamento Terra", Description: "Com a barra no chão, agache-se com a coluna reta e segure a barra. Levante-se estendendo as pernas e o quadril. Mantenha a barra próxima ao corpo."},
			{Name: "Barra Fixa (Pull-up)", Description: "Segure a barra com as mãos em pronação (palmas para frente). Puxe o corpo para cima até o queixo passar da barra."},
			{Name: "Remada Curvada com Barra", Description: "Incline o tronco para frente, mantendo a coluna reta. Puxe a barra em direção ao abdômen."},
			{Name: "Remada Unilateral com Halter (Serrote)", Description: "Apoie um joelho e uma mão em um banco. Com a outra mão, puxe um halter para cima, mantendo o cotovelo próximo ao corpo."},
		},
	},
	{
		MuscleGroup: "Pernas (Quadríceps e Glúteos)",
		Exercises: []Entry{
			{Name: "Agachamento Livre", Description: "Com a barra nos ombros, agache como se fosse sentar em uma cadeira, mantendo a coluna reta e os joelhos alinhados com os pés. Desça até os quadris ficarem paralelos ao chão ou mais baixo."},
			{Name: "Leg Press 45°", Description: "Sente-se na máquina e coloque os pés na plataforma. Empurre a plataforma para cima e controle a descida."},
			{Name: "Cadeira Extensora", Description: "Sente-se na máquina e posicione os tornozelos atrás do rolo. Estenda as pernas para cima, contraindo o quadríceps."},
			{Name: "Afundo (Passada)", Description: "Dê um passo à frente e flexione ambos os joelhos, descendo o corpo até que o joelho de trás quase toque o chão. Retorne e alterne as pernas."},
			{Name: "Elevação Pélvica (Hip Thrust)", Description: "Apoie as costas em um banco e coloque uma barra sobre o quadril. Eleve o quadril, contraindo os glúteos, até o corpo formar uma linha reta dos ombros aos joelhos."},
		},
	},
	{
		MuscleGroup: "Pernas (Posterior e Glúteos)",
		Exercises: []Entry{
			{Name: "Stiff com Barra", Description: "Segurando uma barra, desça o tronco com as pernas quase retas, sentindo alongar a parte de trás das coxas. Mantenha a coluna reta."},
			{Name: "Mesa Flexora", Description: "Deite-se de bruços na máquina e posicione os tornozelos sob o rolo. Flexione os joelhos, trazendo o rolo em direção aos glúteos."},
			{Name: "Cadeira Flexora", Description: "Sente-se na máquina e prenda as pernas. Flexione os joelhos para baixo, contraindo os músculos posteriores da coxa."},
			{Name: "Bom Dia (Good Morning)", Description: "Com uma barra nos ombros (como no agachamento), incline o tronco para frente, mantendo a coluna reta e os joelhos levemente flexionados. Desça até o tronco ficar quase paralelo ao chão e retorne."},
		},
	},
	{
		MuscleGroup: "Ombros",
		Exercises: []Entry{
			{Name: "Desenvolvimento Militar com Barra", Description: "Em pé ou sentado, segure a barra na altura dos ombros e empurre-a para cima da cabeça, estendendo completamente os cotovelos."},
			{Name: "Elevação Lateral com Halteres", Description: "Em pé, com um halter em cada mão, eleve os braços para os lados até a altura dos ombros, com os cotovelos levemente flexionados."},
			{Name: "Face Pull", Description: "Usando a polia alta com uma corda, puxe a corda em direção ao seu rosto, afastando as mãos e contraindo a parte de trás dos ombros."},
		},
	},
	{
		MuscleGroup: "Bíceps",
		Exercises: []Entry{
			{Name: "Rosca Direta com Barra", Description: "Segure a barra com as palmas das mãos para cima (supinação). Flexione os cotovelos, trazendo a barra em direção aos ombros."},
			{Name: "Rosca Martelo", Description: "Segure os halteres com as palmas das mãos voltadas uma para a outra (pegada neutra). Flexione os cotovelos."},
		},
	},
	{
		MuscleGroup: "Tríceps",
		Exercises: []Entry{
			{Name: "Tríceps Pulley com Barra", Description: "Na polia alta, segure a barra e empurre-a para baixo até estender completamente os cotovelos. Mantenha os cotovelos fixos ao lado do corpo."},
			{Name: "Tríceps Testa com Barra", Description: "Deitado, segure a barra acima da cabeça. Desça a barra em direção à testa, flexionando os cotovelos, e depois estenda de volta."},
			{Name: "Tríceps Francês com Halter", Description: "Sentado ou em pé, segure um halter com as duas mãos acima da cabeça. Desça o halter por trás da cabeça, flexionando os cotovelos, e retorne."},
		},
	},
}
